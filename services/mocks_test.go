package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"go.pilab.hu/credstore/domain"
)

type MockEphemeralTokenRepository struct {
	mock.Mock
}

func (m *MockEphemeralTokenRepository) Insert(ctx context.Context, token *domain.EphemeralToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEphemeralTokenRepository) Get(ctx context.Context, id []byte) (*domain.EphemeralToken, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EphemeralToken), args.Error(1)
}

func (m *MockEphemeralTokenRepository) DeleteExpired(ctx context.Context, horizon time.Time) (int64, error) {
	args := m.Called(ctx, horizon)
	return args.Get(0).(int64), args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Upsert(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.User, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBotDelegationRepository struct {
	mock.Mock
}

func (m *MockBotDelegationRepository) Set(ctx context.Context, delegation *domain.BotDelegation) error {
	args := m.Called(ctx, delegation)
	return args.Error(0)
}

func (m *MockBotDelegationRepository) Get(ctx context.Context, userID string) (*domain.BotDelegation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BotDelegation), args.Error(1)
}

func (m *MockBotDelegationRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockFederatedIdentityRepository struct {
	mock.Mock
}

func (m *MockFederatedIdentityRepository) Create(ctx context.Context, identity *domain.FederatedIdentity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockFederatedIdentityRepository) GetBySubject(ctx context.Context, provider, subject string) (*domain.FederatedIdentity, error) {
	args := m.Called(ctx, provider, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FederatedIdentity), args.Error(1)
}

func (m *MockFederatedIdentityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.FederatedIdentity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FederatedIdentity), args.Error(1)
}

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Replace(ctx context.Context, cred *domain.ProviderCredential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *MockCredentialRepository) Get(ctx context.Context, accountID, tokenType string) (*domain.ProviderCredential, error) {
	args := m.Called(ctx, accountID, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderCredential), args.Error(1)
}

type MockScopeRepository struct {
	mock.Mock
}

func (m *MockScopeRepository) Register(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockScopeRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockSessionTokenRepository struct {
	mock.Mock
}

func (m *MockSessionTokenRepository) Insert(ctx context.Context, token *domain.SessionToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionTokenRepository) Touch(ctx context.Context, tokenHash string, now, horizon time.Time) (*domain.SessionToken, error) {
	args := m.Called(ctx, tokenHash, now, horizon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionToken), args.Error(1)
}

func (m *MockSessionTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}
