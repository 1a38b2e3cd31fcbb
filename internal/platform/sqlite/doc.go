// Package sqlite implements the store interfaces on top of the pure-Go
// modernc.org/sqlite driver. It backs local development and the in-process
// end-to-end tests; production deployments use the postgres package.
package sqlite
