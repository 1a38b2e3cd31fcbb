package service

import "errors"

// Common service errors - sentinel errors callers check with errors.Is().
// The API layer maps each of them to an HTTP status code.
var (
	// ErrInvalidCredentials is returned by AccountService.Authenticate for an
	// unknown email and for a wrong password alike, so callers cannot probe
	// which accounts exist. API layer maps this to 401 Unauthorized.
	ErrInvalidCredentials = errors.New("user credentials do not match")
)
