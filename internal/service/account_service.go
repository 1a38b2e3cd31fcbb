package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/phrazzld/askr-api/internal/service/auth"
	"github.com/phrazzld/askr-api/internal/store"
)

// AccountService provides sign-up and login.
type AccountService interface {
	// Register creates an account for email. It returns store.ErrEmailExists
	// when the email is taken, including when a concurrent registration wins
	// the race between the existence check and the insert.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate checks the credentials and returns a signed access token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type accountService struct {
	db         *sql.DB
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	db *sql.DB,
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) (AccountService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		db:         db,
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "account_service")),
	}, nil
}

// Register implements AccountService.Register
func (s *accountService) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		_, err := txStore.GetByEmail(ctx, email)
		if err == nil {
			return store.ErrEmailExists
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		digest, err := s.hasher.Hash(password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				return domain.NewValidationError("password", "must be at most 72 bytes", err)
			}
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user, err = domain.NewUser(name, email, digest)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			log.Debug("attempted to register an existing email")
			return nil, store.ErrEmailExists
		case errors.Is(err, domain.ErrValidation):
			log.Debug("account registration rejected", slog.String("error", err.Error()))
			return nil, err
		default:
			log.Error("failed to register account", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to register account: %w", err)
		}
	}

	log.Info("account registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate implements AccountService.Authenticate
func (s *accountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown email")
			return "", ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(user.HashedPassword, password) {
		log.Debug("login attempt with wrong password", slog.String("user_id", user.ID.String()))
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to generate token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user authenticated", slog.String("user_id", user.ID.String()))
	return token, nil
}
