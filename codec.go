package credstore

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	serrors "go.pilab.hu/credstore/errors"
)

// TokenLength is the byte length of every raw token this module mints.
// 15 bytes encode to exactly 20 base64 characters with no padding, so the
// text form is stable and decode never has to reason about '=' handling.
const TokenLength = 15

// EncodedTokenLength is the length of the URL-safe text form of a RawToken.
const EncodedTokenLength = 20

// RawToken is an opaque token identifier as stored, before text encoding.
type RawToken [TokenLength]byte

// tokenEncoding is URL- and filename-safe base64: the standard alphabet
// with '/' replaced by '_' and '+' replaced by '-'. Padding is always
// stripped; 15-byte inputs never produce any.
var tokenEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// GenerateToken returns a fresh random token from the platform CSPRNG.
// Ephemeral and session tokens are bearer credentials, so a predictable
// generator here is a direct security failure.
func GenerateToken() (RawToken, error) {
	var t RawToken
	if _, err := rand.Read(t[:]); err != nil {
		return RawToken{}, fmt.Errorf("reading random token bytes: %w", err)
	}
	return t, nil
}

// Encode renders the token in its wire form.
func (t RawToken) Encode() string {
	return tokenEncoding.EncodeToString(t[:])
}

// DecodeToken parses the wire form back into a RawToken. It returns
// errors.ErrInvalidTokenFormat for input outside the token alphabet, with
// padding characters, or of the wrong length.
func DecodeToken(s string) (RawToken, error) {
	if len(s) != EncodedTokenLength {
		return RawToken{}, serrors.ErrInvalidTokenFormat
	}
	raw, err := tokenEncoding.DecodeString(s)
	if err != nil {
		return RawToken{}, serrors.ErrInvalidTokenFormat
	}
	var t RawToken
	copy(t[:], raw)
	return t, nil
}
