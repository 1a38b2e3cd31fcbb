package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/askr-api/internal/service/auth"
)

// MockJWTService is a function-field fake of auth.JWTService. Unset
// functions fall back to the static Token/Claims and their errors.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken returns GenerateTokenFn's result or the static token.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.GenerateErr
}

// ValidateToken returns ValidateTokenFn's result or the static claims.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
