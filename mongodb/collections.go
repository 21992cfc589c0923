package mongodb

const (
	EphemeralTokensCollection     = "ephemeral_tokens"     // Short-lived payload tokens
	AccountsCollection            = "accounts"             // Provider accounts, role-independent
	UsersCollection               = "users"                // Local users
	FederatedIdentitiesCollection = "federated_identities" // External (provider, subject) identity links
	BotDelegationsCollection      = "bot_delegations"      // User -> bot account delegations
	CredentialsCollection         = "provider_credentials" // Provider-issued access/refresh tokens
	ScopesCollection              = "oauth_scopes"         // Registered scope vocabulary
	SessionTokensCollection       = "session_tokens"       // Long-lived user API tokens
)
