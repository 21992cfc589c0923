package domain

import (
	"context"
	"time"
)

// EphemeralTokenRepository persists short-lived payload tokens.
type EphemeralTokenRepository interface {
	// Insert stores a new token row. Returns errors.ErrDuplicateToken if
	// the identifier already exists, so the caller can regenerate.
	Insert(ctx context.Context, token *EphemeralToken) error

	// Get fetches a token by exact identifier bytes. The fetch is raw:
	// no expiry filtering happens here (liveness is the caller's call,
	// via the sweep or an explicit horizon check). Returns
	// errors.ErrNotFound for unknown identifiers.
	Get(ctx context.Context, id []byte) (*EphemeralToken, error)

	// DeleteExpired removes every token with expires_at strictly before
	// the horizon and reports how many rows went away. Idempotent.
	DeleteExpired(ctx context.Context, horizon time.Time) (int64, error)
}

// AccountRepository persists provider accounts.
type AccountRepository interface {
	// Upsert registers an account id, or does nothing if it is already
	// registered.
	Upsert(ctx context.Context, id string) error

	// Exists reports whether the account id is registered.
	Exists(ctx context.Context, id string) (bool, error)
}

// UserRepository persists local users.
type UserRepository interface {
	// Create inserts a new user. Returns errors.ErrDuplicateIdentity if
	// the user's provider account is already linked to another user.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id string) (*User, error)
	GetByAccountID(ctx context.Context, accountID string) (*User, error)
}

// BotDelegationRepository persists user -> bot-account delegations.
type BotDelegationRepository interface {
	// Set stores the delegation for a user, replacing any prior one.
	Set(ctx context.Context, delegation *BotDelegation) error

	// Get returns the user's active delegation, or errors.ErrNotFound.
	Get(ctx context.Context, userID string) (*BotDelegation, error)

	// Delete revokes the user's delegation. Deleting an absent
	// delegation is not an error.
	Delete(ctx context.Context, userID string) error
}

// FederatedIdentityRepository persists external identity links.
type FederatedIdentityRepository interface {
	// Create links an identity to a user. Returns
	// errors.ErrDuplicateIdentity if the (provider, subject) pair is
	// already linked.
	Create(ctx context.Context, identity *FederatedIdentity) error

	GetBySubject(ctx context.Context, provider, subject string) (*FederatedIdentity, error)
	ListByUserID(ctx context.Context, userID string) ([]*FederatedIdentity, error)
}

// CredentialRepository persists provider-issued OAuth credentials.
type CredentialRepository interface {
	// Replace stores the credential for its (account, token type) slot,
	// superseding any previous one in a single atomic write.
	Replace(ctx context.Context, cred *ProviderCredential) error

	// Get returns the live credential of the given type for an account,
	// or errors.ErrNotFound.
	Get(ctx context.Context, accountID, tokenType string) (*ProviderCredential, error)
}

// ScopeRepository persists the registered scope vocabulary. The vocabulary
// is append-only: scopes are registered, never removed.
type ScopeRepository interface {
	Register(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// SessionTokenRepository persists long-lived user tokens.
type SessionTokenRepository interface {
	// Insert stores a new token. Returns errors.ErrDuplicateToken if the
	// token hash already exists.
	Insert(ctx context.Context, token *SessionToken) error

	// Touch looks up an unexpired token by hash and advances its
	// last_used_at to now in the same storage operation, so the liveness
	// check and the bump cannot race a concurrent reader. Tokens that
	// are absent or expired relative to the horizon both yield
	// errors.ErrNotFound.
	Touch(ctx context.Context, tokenHash string, now, horizon time.Time) (*SessionToken, error)

	// DeleteByHash hard-deletes a token. Returns errors.ErrNotFound if
	// no token has that hash.
	DeleteByHash(ctx context.Context, tokenHash string) error
}
