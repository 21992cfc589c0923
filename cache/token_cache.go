// Package cache provides optional read-through caches for token
// redemption. Ephemeral token rows are immutable after creation, so a
// cache in front of the store can never serve stale data; a miss simply
// falls through to the repository.
package cache

import (
	"context"
	"io"
	"time"
)

// Entry is the cached view of an ephemeral token: its payload and expiry.
// Expiry filtering stays with the caller, matching the store contract.
type Entry struct {
	Payload   []byte    `json:"payload"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenCache caches redeemable tokens keyed by their text form. Keys are
// hashed before storage so the cache never holds raw secrets.
type TokenCache interface {
	io.Closer

	// Set stores an entry under the token. Entries whose expiry has
	// already passed may be dropped silently.
	Set(ctx context.Context, token string, entry *Entry) error

	// Get returns the entry for a token, or false on a miss. A miss is
	// never an error: the caller falls back to the repository.
	Get(ctx context.Context, token string) (*Entry, bool)

	// Delete removes a token from the cache.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes entries whose expiry has passed.
	DeleteExpired(ctx context.Context) error
}
