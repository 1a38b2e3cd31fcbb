package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken is returned for every token that fails validation:
	// malformed, wrong algorithm, bad signature, expired, or a subject that
	// is not a user ID. Callers cannot and should not distinguish the cases.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrPasswordTooLong indicates the plaintext exceeds bcrypt's 72-byte input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
