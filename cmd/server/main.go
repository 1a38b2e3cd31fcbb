// Package main implements the entry point for the askr API server, which
// serves account creation, login and question creation over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/askr-api/internal/config"
	"github.com/phrazzld/askr-api/internal/platform/migrate"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command ("+strings.Join(migrate.Commands, ", ")+") and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		stop()
		log.Printf("askr-api: %v", err)
		os.Exit(1)
	}
}

// run wires the application from configuration and either executes a
// migration command or serves HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	logConfigSummary(logger, cfg)

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing database connection", "error", err)
			}
		}()
		return migrate.Run(ctx, db, cfg.Database.Driver, migrateCmd, logger)
	}

	// SQLite databases are local and disposable; bring them to the latest
	// schema on every start. Postgres is migrated explicitly.
	if cfg.Database.Driver == config.DriverSQLite {
		if err := migrate.Run(ctx, db, cfg.Database.Driver, migrate.CommandUp, logger); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
