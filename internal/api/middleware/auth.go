package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/service/auth"
)

// ErrAuthenticationRequired is returned for every request the gate rejects:
// missing header, wrong scheme, or a token that fails validation.
var ErrAuthenticationRequired = errors.New("authentication required")

// TokenValidator is the part of auth.JWTService the gate depends on.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Authorize extracts the bearer token from an Authorization header value,
// validates it and returns the token's subject.
func Authorize(ctx context.Context, validator TokenValidator, header string) (uuid.UUID, error) {
	if header == "" {
		return uuid.Nil, fmt.Errorf("%w: missing authorization header", ErrAuthenticationRequired)
	}

	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return uuid.Nil, fmt.Errorf("%w: invalid authorization format", ErrAuthenticationRequired)
	}

	claims, err := validator.ValidateToken(ctx, token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrAuthenticationRequired, err)
	}
	if claims == nil || claims.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: token has no subject", ErrAuthenticationRequired)
	}

	return claims.UserID, nil
}

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Authenticate runs Authorize on the request's Authorization header. On
// success the subject is bound to the request context for the wrapped
// handler; on failure the request ends with 401 and next is not called.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := Authorize(r.Context(), m.validator, r.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer`)
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Unauthorized", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), userID)))
	})
}

// GetUserID extracts the user ID bound by Authenticate.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
