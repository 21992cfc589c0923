package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
	"go.pilab.hu/credstore/mongodb/testutil"
)

func TestSessionTokenRepository_Integration(t *testing.T) {
	db, cleanup := testutil.SetupTestMongoDB(t, "test_session_tokens")
	defer cleanup()

	ctx := context.Background()
	repo, err := NewSessionTokenRepository(ctx, db)
	require.NoError(t, err)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(24 * time.Hour)

	token := &domain.SessionToken{
		ID:         "tok-1",
		TokenHash:  "hash-1",
		UserID:     "user-1",
		CreatedAt:  createdAt,
		LastUsedAt: createdAt,
		ExpiresAt:  expiresAt,
	}
	require.NoError(t, repo.Insert(ctx, token))

	t.Run("duplicate hash", func(t *testing.T) {
		dup := *token
		dup.ID = "tok-2"
		assert.ErrorIs(t, repo.Insert(ctx, &dup), serrors.ErrDuplicateToken)
	})

	t.Run("touch advances last_used_at", func(t *testing.T) {
		now := createdAt.Add(time.Hour)
		got, err := repo.Touch(ctx, "hash-1", now, now)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)
		assert.True(t, got.LastUsedAt.Equal(now))
	})

	t.Run("token valid exactly at expiry", func(t *testing.T) {
		_, err := repo.Touch(ctx, "hash-1", expiresAt, expiresAt)
		assert.NoError(t, err, "expiry comparison is strict")
	})

	t.Run("expired token not found", func(t *testing.T) {
		past := expiresAt.Add(time.Second)
		_, err := repo.Touch(ctx, "hash-1", past, past)
		assert.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("revoke", func(t *testing.T) {
		require.NoError(t, repo.DeleteByHash(ctx, "hash-1"))
		assert.ErrorIs(t, repo.DeleteByHash(ctx, "hash-1"), serrors.ErrNotFound)
	})
}
