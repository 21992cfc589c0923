package domain

import "time"

// EphemeralToken is a short-lived opaque handle over an arbitrary payload,
// used for one-time or time-boxed exchanges such as OAuth state blobs and
// one-time links. Rows are immutable after creation: they are read zero or
// more times and eventually removed by the expiry sweep.
type EphemeralToken struct {
	// ID is the raw random token identifier. It doubles as the primary
	// key, so identifier uniqueness is a storage constraint rather than
	// an application-level check.
	ID        []byte    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
	Payload   []byte    `bson:"payload"`
}
