package credstore

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex-encoded SHA-256 digest of a token's text form.
// Token secrets are write-once, compare-only values: the stores index them
// by this digest so the raw secret never sits at rest in the database or
// cache.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
