package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	credstore "go.pilab.hu/credstore"
	"go.pilab.hu/credstore/cache"
	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// issueAttempts bounds regeneration on token identifier collisions. With
// 15 random bytes a single collision is already implausible; hitting the
// bound means the CSPRNG is broken.
const issueAttempts = 3

// EphemeralTokenService issues and redeems short-lived payload tokens,
// e.g. OAuth state blobs and one-time links.
type EphemeralTokenService struct {
	repo  domain.EphemeralTokenRepository
	cache cache.TokenCache
}

// NewEphemeralTokenService creates an EphemeralTokenService. The cache is
// optional; pass nil to read straight from the repository.
func NewEphemeralTokenService(repo domain.EphemeralTokenRepository, tokenCache cache.TokenCache) *EphemeralTokenService {
	return &EphemeralTokenService{repo: repo, cache: tokenCache}
}

// Issue mints a token over the payload and returns its text form. The
// expiry must fall strictly after the creation time; the storage schema
// does not enforce this, so the check lives here.
func (s *EphemeralTokenService) Issue(ctx context.Context, payload []byte, createdAt, expiresAt time.Time) (string, error) {
	if !expiresAt.After(createdAt) {
		return "", serrors.ErrInvalidExpiry
	}

	for attempt := 1; attempt <= issueAttempts; attempt++ {
		raw, err := credstore.GenerateToken()
		if err != nil {
			return "", err
		}

		err = s.repo.Insert(ctx, &domain.EphemeralToken{
			ID:        raw[:],
			CreatedAt: createdAt,
			ExpiresAt: expiresAt,
			Payload:   payload,
		})
		if errors.Is(err, serrors.ErrDuplicateToken) {
			log.Warn().Int("attempt", attempt).Msg("ephemeral token identifier collision, regenerating")
			continue
		}
		if err != nil {
			return "", err
		}

		text := raw.Encode()
		if s.cache != nil {
			if cerr := s.cache.Set(ctx, text, &cache.Entry{Payload: payload, ExpiresAt: expiresAt}); cerr != nil {
				log.Debug().Err(cerr).Msg("ephemeral token cache fill failed")
			}
		}
		return text, nil
	}

	return "", serrors.ErrTokenSpaceExhausted
}

// Redeem returns the payload and expiry behind a token. The fetch is raw:
// expiry filtering is the caller's responsibility, via Expired or the
// sweep. Malformed text yields the same errors.ErrNotFound as an unknown
// token, so callers cannot distinguish the two cases.
func (s *EphemeralTokenService) Redeem(ctx context.Context, text string) ([]byte, time.Time, error) {
	raw, err := credstore.DecodeToken(text)
	if err != nil {
		log.Debug().Msg("rejecting malformed ephemeral token")
		return nil, time.Time{}, serrors.ErrNotFound
	}

	if s.cache != nil {
		if entry, ok := s.cache.Get(ctx, text); ok {
			return entry.Payload, entry.ExpiresAt, nil
		}
	}

	token, err := s.repo.Get(ctx, raw[:])
	if err != nil {
		return nil, time.Time{}, err
	}

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, text, &cache.Entry{Payload: token.Payload, ExpiresAt: token.ExpiresAt}); cerr != nil {
			log.Debug().Err(cerr).Msg("ephemeral token cache fill failed")
		}
	}
	return token.Payload, token.ExpiresAt, nil
}

// Sweep deletes every token expired relative to the horizon and reports
// how many were removed. Idempotent, and safe to run concurrently with
// Issue and Redeem: a token redeemed in the instant it is swept may yield
// either outcome.
func (s *EphemeralTokenService) Sweep(ctx context.Context, horizon time.Time) (int64, error) {
	deleted, err := s.repo.DeleteExpired(ctx, horizon)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if cerr := s.cache.DeleteExpired(ctx); cerr != nil {
			log.Debug().Err(cerr).Msg("ephemeral token cache sweep failed")
		}
	}
	return deleted, nil
}
