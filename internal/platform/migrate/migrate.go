// Package migrate applies the embedded SQL schema migrations with goose.
// Each storage driver ships its own migration set; the runner picks the
// goose dialect and file system that match the configured driver.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/phrazzld/askr-api/internal/config"
	"github.com/phrazzld/askr-api/internal/platform/postgres"
	"github.com/phrazzld/askr-api/internal/platform/sqlite"
	"github.com/pressly/goose/v3"
)

// Supported commands for Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandReset   = "reset"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// Commands lists every command accepted by Run.
var Commands = []string{CommandUp, CommandDown, CommandReset, CommandStatus, CommandVersion}

// NewProvider returns a goose provider bound to db and to the migration set
// of the given driver.
func NewProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	var (
		dialect  goose.Dialect
		embedded fs.FS
	)

	switch driver {
	case config.DriverPostgres:
		dialect, embedded = goose.DialectPostgres, postgres.Migrations
	case config.DriverSQLite:
		dialect, embedded = goose.DialectSQLite3, sqlite.Migrations
	default:
		return nil, fmt.Errorf("unsupported database driver for migrations: %q", driver)
	}

	fsys, err := fs.Sub(embedded, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Run executes a single migration command against db.
func Run(ctx context.Context, db *sql.DB, driver, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("component", "migrations"),
		slog.String("driver", driver),
		slog.String("command", command),
	)

	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	start := time.Now()
	log.Info("starting migration command")

	switch command {
	case CommandUp:
		var results []*goose.MigrationResult
		results, err = provider.Up(ctx)
		logResults(log, results)
	case CommandDown:
		var result *goose.MigrationResult
		result, err = provider.Down(ctx)
		if result != nil {
			logResults(log, []*goose.MigrationResult{result})
		}
	case CommandReset:
		var results []*goose.MigrationResult
		results, err = provider.DownTo(ctx, 0)
		logResults(log, results)
	case CommandStatus:
		var statuses []*goose.MigrationStatus
		statuses, err = provider.Status(ctx)
		for _, s := range statuses {
			log.Info("migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt))
		}
	case CommandVersion:
		var version int64
		version, err = provider.GetDBVersion(ctx)
		if err == nil {
			log.Info("current database version", slog.Int64("version", version))
		}
	default:
		return fmt.Errorf("unknown migration command: %s (expected one of %v)", command, Commands)
	}

	if err != nil {
		log.Error("migration command failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("migration command executed successfully",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Version returns the schema version currently applied to db.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

func logResults(log *slog.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Int64("duration_ms", r.Duration.Milliseconds()))
	}
}
