package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	credstore "go.pilab.hu/credstore"
	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// SessionTokenService issues and validates long-lived user tokens: API
// tokens and bot delegation tokens.
type SessionTokenService struct {
	tokens domain.SessionTokenRepository
	users  domain.UserRepository
}

func NewSessionTokenService(tokens domain.SessionTokenRepository, users domain.UserRepository) *SessionTokenService {
	return &SessionTokenService{tokens: tokens, users: users}
}

// Issue mints a token owned by the user and returns its text form. Only
// the SHA-256 digest of the text is persisted.
func (s *SessionTokenService) Issue(ctx context.Context, userID string, createdAt, expiresAt time.Time) (string, error) {
	if !expiresAt.After(createdAt) {
		return "", serrors.ErrInvalidExpiry
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", err
	}

	for attempt := 1; attempt <= issueAttempts; attempt++ {
		raw, err := credstore.GenerateToken()
		if err != nil {
			return "", err
		}
		text := raw.Encode()

		err = s.tokens.Insert(ctx, &domain.SessionToken{
			ID:         uuid.NewString(),
			TokenHash:  credstore.HashToken(text),
			UserID:     userID,
			CreatedAt:  createdAt,
			LastUsedAt: createdAt,
			ExpiresAt:  expiresAt,
		})
		if errors.Is(err, serrors.ErrDuplicateToken) {
			log.Warn().Int("attempt", attempt).Msg("session token collision, regenerating")
			continue
		}
		if err != nil {
			return "", err
		}
		return text, nil
	}

	return "", serrors.ErrTokenSpaceExhausted
}

// Validate resolves a token to its owning user and advances last_used_at
// to now; the liveness check and the bump happen in one storage operation.
// Malformed, unknown and expired tokens all yield errors.ErrNotFound.
func (s *SessionTokenService) Validate(ctx context.Context, text string, now time.Time) (*domain.User, error) {
	if _, err := credstore.DecodeToken(text); err != nil {
		log.Debug().Msg("rejecting malformed session token")
		return nil, serrors.ErrNotFound
	}

	token, err := s.tokens.Touch(ctx, credstore.HashToken(text), now, now)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, token.UserID)
}

// Revoke hard-deletes a token. Malformed and unknown tokens both yield
// errors.ErrNotFound.
func (s *SessionTokenService) Revoke(ctx context.Context, text string) error {
	if _, err := credstore.DecodeToken(text); err != nil {
		return serrors.ErrNotFound
	}
	return s.tokens.DeleteByHash(ctx, credstore.HashToken(text))
}
