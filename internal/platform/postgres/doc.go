// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query execution and data mapping between domain entities and
// database records, and translates driver errors (pgconn.PgError codes) into
// store sentinels. Connections are opened through the pgx database/sql driver.
package postgres
