package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/askr-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary logs the non-secret parts of cfg.
func logConfigSummary(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	logger.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")
	logger.Debug("CORS configuration", "allowed_origins", cfg.Server.AllowedOrigins)
}
