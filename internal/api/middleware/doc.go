// Package middleware contains the HTTP middleware specific to this API:
// request tracing and the bearer-token authorization gate. Generic
// middleware (request IDs, real IP, access logging, panic recovery, CORS)
// comes from go-chi and is wired in cmd/server.
package middleware
