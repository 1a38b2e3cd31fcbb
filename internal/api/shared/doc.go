// Package shared holds the request and response helpers used by both the
// api handlers and the api/middleware package: JSON decoding and
// validation, the uniform error body, and the request-scoped user and
// trace IDs.
package shared
