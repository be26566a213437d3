package account

import "time"

// SignedToken is an opaque string embedding a subject public id and an
// absolute expiry instant, protected against tampering.
type SignedToken string

// TokenCodec issues and validates signed, time-limited tokens. Both
// verification and password-reset tokens use the same codec, with
// different TTLs chosen by the caller.
type TokenCodec interface {
	Issue(subject PublicID, ttl time.Duration) SignedToken
	// Decode returns the token subject, ErrTokenExpired or ErrTokenInvalid.
	Decode(token SignedToken) (PublicID, error)
	// HasExpired fails closed: a malformed token counts as expired.
	HasExpired(token SignedToken) bool
}
