package domain

import "time"

// Credential token types. An account holds at most one live credential of
// each type; storing a new one supersedes the old wholesale.
const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

// ProviderCredential is an OAuth token issued by the external provider for
// one account. Access credentials carry an expiry and a scope set; refresh
// credentials carry neither, reflecting that the provider's refresh tokens
// live until explicitly revoked.
//
// Scopes are embedded in the document rather than normalized out, so
// replacing an access token and its scope set is a single-document write:
// readers never observe a token with no scopes, or with a mix of old and
// new ones.
type ProviderCredential struct {
	ID        string `bson:"_id,omitempty"`
	AccountID string `bson:"account_id"`
	TokenType string `bson:"token_type"`
	// Token is the provider-issued secret. Write-once, compare-only.
	Token     string     `bson:"token"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	Scopes    []string   `bson:"scopes,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// Scope is an entry in the registered, append-only scope vocabulary.
type Scope struct {
	Name      string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
}
