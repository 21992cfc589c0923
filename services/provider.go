package services

import (
	"go.pilab.hu/credstore/cache"
	"go.pilab.hu/credstore/domain"
)

// Repositories collects the persistence dependencies of the store.
type Repositories struct {
	EphemeralTokens domain.EphemeralTokenRepository
	Accounts        domain.AccountRepository
	Users           domain.UserRepository
	Delegations     domain.BotDelegationRepository
	Identities      domain.FederatedIdentityRepository
	Credentials     domain.CredentialRepository
	Scopes          domain.ScopeRepository
	SessionTokens   domain.SessionTokenRepository
}

// Store is the complete data-access surface of the credential store. The
// API front end consumes these services and nothing else, so the graph and
// token invariants stay centrally enforced.
type Store struct {
	EphemeralTokens *EphemeralTokenService
	Accounts        *AccountService
	Credentials     *CredentialService
	SessionTokens   *SessionTokenService
}

// NewStore wires the services over the given repositories. The token
// cache is optional and only accelerates ephemeral token redemption.
func NewStore(repos Repositories, tokenCache cache.TokenCache) *Store {
	return &Store{
		EphemeralTokens: NewEphemeralTokenService(repos.EphemeralTokens, tokenCache),
		Accounts:        NewAccountService(repos.Accounts, repos.Users, repos.Delegations, repos.Identities),
		Credentials:     NewCredentialService(repos.Accounts, repos.Credentials, repos.Scopes),
		SessionTokens:   NewSessionTokenService(repos.SessionTokens, repos.Users),
	}
}
