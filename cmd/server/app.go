package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/askr-api/internal/config"
	"github.com/phrazzld/askr-api/internal/platform/postgres"
	"github.com/phrazzld/askr-api/internal/platform/sqlite"
	"github.com/phrazzld/askr-api/internal/service"
	"github.com/phrazzld/askr-api/internal/service/auth"
	"github.com/phrazzld/askr-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	questionStore store.QuestionStore

	jwtService      auth.JWTService
	passwordHasher  auth.PasswordHasher
	accountService  service.AccountService
	questionService service.QuestionService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		app.userStore = postgres.NewPostgresUserStore(db, logger)
		app.questionStore = postgres.NewPostgresQuestionStore(db, logger)
	case config.DriverSQLite:
		app.userStore = sqlite.NewUserStore(db, logger)
		app.questionStore = sqlite.NewQuestionStore(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	app.accountService, err = service.NewAccountService(
		db,
		app.userStore,
		app.passwordHasher,
		app.jwtService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.questionService, err = service.NewQuestionService(app.questionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
