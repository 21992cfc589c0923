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

func TestEphemeralTokenRepository_Integration(t *testing.T) {
	db, cleanup := testutil.SetupTestMongoDB(t, "test_ephemeral_tokens")
	defer cleanup()

	ctx := context.Background()
	repo := NewEphemeralTokenRepository(db)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	id := []byte("aaaaaaaaaaaaaaa") // 15 bytes

	token := &domain.EphemeralToken{
		ID:        id,
		CreatedAt: base,
		ExpiresAt: base.Add(10 * time.Second),
		Payload:   []byte("state123"),
	}
	require.NoError(t, repo.Insert(ctx, token))

	t.Run("duplicate identifier", func(t *testing.T) {
		err := repo.Insert(ctx, token)
		assert.ErrorIs(t, err, serrors.ErrDuplicateToken)
	})

	t.Run("raw fetch", func(t *testing.T) {
		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []byte("state123"), got.Payload)
		assert.True(t, got.ExpiresAt.Equal(base.Add(10*time.Second)))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := repo.Get(ctx, []byte("bbbbbbbbbbbbbbb"))
		assert.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("sweep before expiry leaves token redeemable", func(t *testing.T) {
		deleted, err := repo.DeleteExpired(ctx, base.Add(5*time.Second))
		require.NoError(t, err)
		assert.Zero(t, deleted)

		_, err = repo.Get(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("sweep after expiry removes token", func(t *testing.T) {
		deleted, err := repo.DeleteExpired(ctx, base.Add(11*time.Second))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, serrors.ErrNotFound)

		// Idempotent: sweeping again deletes nothing.
		deleted, err = repo.DeleteExpired(ctx, base.Add(11*time.Second))
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
