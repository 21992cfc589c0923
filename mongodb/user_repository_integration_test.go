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

func TestUserRepository_Integration(t *testing.T) {
	db, cleanup := testutil.SetupTestMongoDB(t, "test_users")
	defer cleanup()

	ctx := context.Background()
	repo, err := NewUserRepository(ctx, db)
	require.NoError(t, err)

	user := &domain.User{
		ID:        "user-1",
		AccountID: "streamer_42",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, user))

	t.Run("one account maps to one user", func(t *testing.T) {
		second := &domain.User{ID: "user-2", AccountID: "streamer_42"}
		assert.ErrorIs(t, repo.Create(ctx, second), serrors.ErrDuplicateIdentity)

		got, err := repo.GetByAccountID(ctx, "streamer_42")
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "streamer_42", got.AccountID)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestBotDelegationRepository_Integration(t *testing.T) {
	db, cleanup := testutil.SetupTestMongoDB(t, "test_bot_delegations")
	defer cleanup()

	ctx := context.Background()
	repo := NewBotDelegationRepository(db)

	first := &domain.BotDelegation{UserID: "user-1", BotAccountID: "bot_a", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Set(ctx, first))

	t.Run("replacing keeps one delegation per user", func(t *testing.T) {
		second := &domain.BotDelegation{UserID: "user-1", BotAccountID: "bot_b", CreatedAt: time.Now().UTC()}
		require.NoError(t, repo.Set(ctx, second))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "bot_b", got.BotAccountID)
	})

	t.Run("revoke", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "user-1"))
		_, err := repo.Get(ctx, "user-1")
		assert.ErrorIs(t, err, serrors.ErrNotFound)

		// Deleting an absent delegation stays quiet.
		assert.NoError(t, repo.Delete(ctx, "user-1"))
	})
}

func TestFederatedIdentityRepository_Integration(t *testing.T) {
	db, cleanup := testutil.SetupTestMongoDB(t, "test_federated_identities")
	defer cleanup()

	ctx := context.Background()
	repo, err := NewFederatedIdentityRepository(ctx, db)
	require.NoError(t, err)

	identity := &domain.FederatedIdentity{
		UserID:    "user-1",
		Provider:  "openid",
		Subject:   "subject-1",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, identity))

	t.Run("subject linked to at most one user", func(t *testing.T) {
		err := repo.Create(ctx, &domain.FederatedIdentity{
			UserID:   "user-2",
			Provider: "openid",
			Subject:  "subject-1",
		})
		assert.ErrorIs(t, err, serrors.ErrDuplicateIdentity)
	})

	t.Run("lookup by subject", func(t *testing.T) {
		got, err := repo.GetBySubject(ctx, "openid", "subject-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID)

		_, err = repo.GetBySubject(ctx, "openid", "nobody")
		assert.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("list by user", func(t *testing.T) {
		identities, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, identities, 1)
		assert.Equal(t, "subject-1", identities[0].Subject)
	})
}
