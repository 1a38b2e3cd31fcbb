package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token whose subject is userID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry of tokenString and extracts
	// the claims. Every failure is reported as ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of an access token.
type Claims struct {
	// UserID is the parsed subject of the token.
	UserID uuid.UUID

	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
