package domain

import "time"

// User is a local user of the bot service. Users come into existence on
// first successful login with a provider account and are never deleted in
// normal operation.
type User struct {
	ID string `bson:"_id"`
	// AccountID is the provider account the user authenticates with.
	// One provider account maps to at most one user.
	AccountID string    `bson:"account_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// FederatedIdentity links a user to an additional OpenID-style identity at
// an external provider. A given (provider, subject) pair belongs to at
// most one user.
type FederatedIdentity struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"user_id"`
	Provider  string    `bson:"provider"`
	Subject   string    `bson:"subject"`
	CreatedAt time.Time `bson:"created_at"`
}
