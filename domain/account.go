package domain

import "time"

// ProviderAccount is any account on the external streaming platform,
// independent of role: the same entity backs both a human user's login
// identity and a delegated bot actor. Role is expressed by the relations
// that reference it (User.AccountID, BotDelegation.BotAccountID), not by
// per-role account types.
type ProviderAccount struct {
	// ID is the provider's own opaque account identifier.
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// BotDelegation nominates a separate provider account as the automation
// actor for a user. A user has at most one active delegation; setting a
// new one replaces the previous.
type BotDelegation struct {
	UserID       string    `bson:"_id"`
	BotAccountID string    `bson:"bot_account_id"`
	CreatedAt    time.Time `bson:"created_at"`
}
