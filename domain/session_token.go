package domain

import "time"

// SessionToken is a long-lived user-facing token: an API token or a
// minibot delegation token. The raw secret is never persisted; the store
// indexes tokens by the SHA-256 digest of their text form.
type SessionToken struct {
	ID        string `bson:"_id"`
	TokenHash string `bson:"token_hash"`
	UserID    string `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
	// LastUsedAt advances on every successful validation. It exists for
	// observability and idle-timeout policies layered above this store.
	LastUsedAt time.Time `bson:"last_used_at"`
	ExpiresAt  time.Time `bson:"expires_at"`
}
