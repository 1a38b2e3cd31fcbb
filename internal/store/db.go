package store

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the platform stores need. Both *sql.DB and
// *sql.Tx satisfy it, so a store bound with WithTx runs the same code.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
