package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// CredentialService records provider-issued OAuth credentials per account.
// It is a pure record of the latest issued pair: rotation is "read refresh
// token, exchange externally, store the new access token" and the external
// exchange never happens here, so no operation blocks on network I/O.
type CredentialService struct {
	accounts    domain.AccountRepository
	credentials domain.CredentialRepository
	scopes      domain.ScopeRepository

	now func() time.Time
}

func NewCredentialService(
	accounts domain.AccountRepository,
	credentials domain.CredentialRepository,
	scopes domain.ScopeRepository,
) *CredentialService {
	return &CredentialService{
		accounts:    accounts,
		credentials: credentials,
		scopes:      scopes,
		now:         time.Now,
	}
}

// WithClock replaces the service clock for tests.
func (s *CredentialService) WithClock(now func() time.Time) *CredentialService {
	s.now = now
	return s
}

// validScopeName checks the scope-token grammar of RFC 6749 §3.3:
// printable ASCII except space, '"' and '\'.
func validScopeName(name string) bool {
	if name == "" {
		return false
	}
	for _, ch := range name {
		valid := ch == 0x21 || (ch >= 0x23 && ch <= 0x5B) || (ch >= 0x5D && ch <= 0x7E)
		if !valid {
			return false
		}
	}
	return true
}

// RegisterScope adds a name to the scope vocabulary. The vocabulary is
// append-only and registration is idempotent. Names outside the RFC 6749
// scope-token grammar are rejected with errors.ErrUnknownScope.
func (s *CredentialService) RegisterScope(ctx context.Context, name string) error {
	if !validScopeName(name) {
		return serrors.ErrUnknownScope
	}
	return s.scopes.Register(ctx, name)
}

// StoreAccessToken records a freshly exchanged access token for the
// account, superseding the previous token and its scope set wholesale.
// Every scope must be in the registered vocabulary.
func (s *CredentialService) StoreAccessToken(ctx context.Context, accountID, token string, expiresAt time.Time, scopes []string) error {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return err
	}

	for _, scope := range scopes {
		known, err := s.scopes.Exists(ctx, scope)
		if err != nil {
			return err
		}
		if !known {
			log.Debug().Str("scope", scope).Msg("rejecting unregistered scope")
			return serrors.ErrUnknownScope
		}
	}

	return s.credentials.Replace(ctx, &domain.ProviderCredential{
		AccountID: accountID,
		TokenType: domain.TokenTypeAccess,
		Token:     token,
		ExpiresAt: &expiresAt,
		Scopes:    scopes,
		UpdatedAt: s.now().UTC(),
	})
}

// StoreRefreshToken records the account's refresh token, superseding any
// previous one. Refresh tokens carry no expiry: the provider's refresh
// tokens live until explicitly revoked.
func (s *CredentialService) StoreRefreshToken(ctx context.Context, accountID, token string) error {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return err
	}
	return s.credentials.Replace(ctx, &domain.ProviderCredential{
		AccountID: accountID,
		TokenType: domain.TokenTypeRefresh,
		Token:     token,
		UpdatedAt: s.now().UTC(),
	})
}

// GetAccessToken returns the account's live access token with its expiry
// and scope set, or errors.ErrNotFound if none is stored.
func (s *CredentialService) GetAccessToken(ctx context.Context, accountID string) (*domain.ProviderCredential, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.credentials.Get(ctx, accountID, domain.TokenTypeAccess)
}

// GetRefreshToken returns the account's refresh token. A registered
// account with no stored refresh token yields errors.ErrNoRefreshToken,
// distinct from errors.ErrUnknownAccount.
func (s *CredentialService) GetRefreshToken(ctx context.Context, accountID string) (string, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return "", err
	}

	cred, err := s.credentials.Get(ctx, accountID, domain.TokenTypeRefresh)
	if errors.Is(err, serrors.ErrNotFound) {
		return "", serrors.ErrNoRefreshToken
	}
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}

func (s *CredentialService) requireAccount(ctx context.Context, accountID string) error {
	registered, err := s.accounts.Exists(ctx, accountID)
	if err != nil {
		return err
	}
	if !registered {
		return serrors.ErrUnknownAccount
	}
	return nil
}
