// Package api handles incoming HTTP requests for accounts, sessions and
// questions. Handlers decode and validate typed request structs, call the
// application services, and translate service errors into HTTP status codes
// and safe messages through HandleAPIError.
package api
