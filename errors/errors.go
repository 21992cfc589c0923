// Package errors defines the error taxonomy of the credential store.
// Storage-layer integrity violations are mapped onto these values at the
// repository boundary, so callers branch on the taxonomy alone and never
// see raw driver errors for contract cases.
package errors

import "errors"

var (
	// ErrInvalidTokenFormat reports token text outside the URL-safe
	// base64 alphabet, with padding, or of the wrong decoded length.
	ErrInvalidTokenFormat = errors.New("invalid token format")

	// ErrNotFound reports an absent token. Services deliberately return
	// it for malformed and unknown tokens alike, so callers cannot be
	// used as an oracle for which case occurred.
	ErrNotFound = errors.New("token not found")

	// ErrUnknownAccount reports a reference to a provider account that
	// was never registered.
	ErrUnknownAccount = errors.New("unknown provider account")

	// ErrDuplicateIdentity reports an attempt to link a provider account
	// or federated identity that already belongs to a different user.
	ErrDuplicateIdentity = errors.New("identity already linked to another user")

	// ErrUnknownScope reports an attempt to associate a scope that is not
	// in the registered vocabulary.
	ErrUnknownScope = errors.New("unknown scope")

	// ErrNoRefreshToken reports a refresh request for an account that has
	// no stored refresh token. Distinct from ErrUnknownAccount.
	ErrNoRefreshToken = errors.New("no refresh token for account")

	// ErrInvalidExpiry reports an issuance request whose expiry does not
	// fall strictly after its creation time.
	ErrInvalidExpiry = errors.New("expiry must be after creation time")

	// ErrTokenSpaceExhausted reports repeated random token collisions.
	// With 15-byte identifiers this is a defensive guard, not an
	// expected outcome.
	ErrTokenSpaceExhausted = errors.New("token space exhausted")

	// ErrDuplicateToken reports a token identifier collision on insert.
	// Repositories return it so services can regenerate and retry; it
	// never crosses the service boundary.
	ErrDuplicateToken = errors.New("duplicate token identifier")
)
