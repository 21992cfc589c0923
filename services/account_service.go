package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// AccountService maintains the account and identity graph: provider
// accounts, the users that authenticate with them, federated identity
// links, and bot delegations.
type AccountService struct {
	accounts    domain.AccountRepository
	users       domain.UserRepository
	delegations domain.BotDelegationRepository
	identities  domain.FederatedIdentityRepository

	now func() time.Time
}

func NewAccountService(
	accounts domain.AccountRepository,
	users domain.UserRepository,
	delegations domain.BotDelegationRepository,
	identities domain.FederatedIdentityRepository,
) *AccountService {
	return &AccountService{
		accounts:    accounts,
		users:       users,
		delegations: delegations,
		identities:  identities,
		now:         time.Now,
	}
}

// WithClock replaces the service clock. Tests use this to drive
// deterministic timestamps.
func (s *AccountService) WithClock(now func() time.Time) *AccountService {
	s.now = now
	return s
}

// UpsertAccount registers a provider account id. Registering an already
// known account is a no-op.
func (s *AccountService) UpsertAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("account id must not be empty")
	}
	return s.accounts.Upsert(ctx, accountID)
}

// LinkUser returns the user owning the provider account, creating both the
// account registration and the user on first login. One provider account
// maps to at most one user: concurrent first logins race on the unique
// account index and the loser adopts the winner's user.
func (s *AccountService) LinkUser(ctx context.Context, accountID string) (*domain.User, error) {
	if err := s.UpsertAccount(ctx, accountID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByAccountID(ctx, accountID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, serrors.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		ID:        uuid.NewString(),
		AccountID: accountID,
		CreatedAt: s.now().UTC(),
	}
	err = s.users.Create(ctx, user)
	if errors.Is(err, serrors.ErrDuplicateIdentity) {
		// Lost a first-login race; the account is linked now.
		return s.users.GetByAccountID(ctx, accountID)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("account_id", accountID).Msg("linked new user")
	return user, nil
}

// SetBotDelegation nominates a provider account as the user's automation
// actor, replacing any prior delegation. The bot account must already be
// registered; delegating an unknown account fails with
// errors.ErrUnknownAccount.
func (s *AccountService) SetBotDelegation(ctx context.Context, userID, botAccountID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	registered, err := s.accounts.Exists(ctx, botAccountID)
	if err != nil {
		return err
	}
	if !registered {
		return serrors.ErrUnknownAccount
	}

	return s.delegations.Set(ctx, &domain.BotDelegation{
		UserID:       userID,
		BotAccountID: botAccountID,
		CreatedAt:    s.now().UTC(),
	})
}

// BotDelegation returns the user's active delegation, or
// errors.ErrNotFound if none is set.
func (s *AccountService) BotDelegation(ctx context.Context, userID string) (*domain.BotDelegation, error) {
	return s.delegations.Get(ctx, userID)
}

// RemoveBotDelegation revokes the user's delegation. Revoking an absent
// delegation is a no-op.
func (s *AccountService) RemoveBotDelegation(ctx context.Context, userID string) error {
	return s.delegations.Delete(ctx, userID)
}

// LinkFederatedIdentity attaches an external (provider, subject) identity
// to the user. A pair already linked elsewhere fails with
// errors.ErrDuplicateIdentity.
func (s *AccountService) LinkFederatedIdentity(ctx context.Context, userID, provider, subject string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.identities.Create(ctx, &domain.FederatedIdentity{
		UserID:    userID,
		Provider:  provider,
		Subject:   subject,
		CreatedAt: s.now().UTC(),
	})
}

// FederatedIdentities lists the user's linked external identities.
func (s *AccountService) FederatedIdentities(ctx context.Context, userID string) ([]*domain.FederatedIdentity, error) {
	return s.identities.ListByUserID(ctx, userID)
}
