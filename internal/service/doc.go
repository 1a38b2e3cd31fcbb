// Package service contains the application use cases: registering an
// account, authenticating with email and password, and creating questions
// for an authenticated author.
//
// Services receive their stores and auth collaborators through constructor
// injection and never depend on a concrete storage backend. Expected
// failures are reported as sentinel errors (ErrInvalidCredentials,
// store.ErrEmailExists, domain.ErrValidation) that the API layer maps to
// HTTP status codes.
package service
