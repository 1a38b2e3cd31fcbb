package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/askr-api/internal/api/middleware"
	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/config"
	"github.com/phrazzld/askr-api/internal/mocks"
	"github.com/phrazzld/askr-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	jwtService := newJWTService(t)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(ctx, userID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{name: "valid bearer token", header: "Bearer " + token},
		{name: "scheme is case insensitive", header: "bearer " + token},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic " + token, wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "garbage token", header: "Bearer not.a.token", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := middleware.Authorize(ctx, jwtService, tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, middleware.ErrAuthenticationRequired)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		first, err := middleware.Authorize(ctx, jwtService, "Bearer "+token)
		require.NoError(t, err)
		second, err := middleware.Authorize(ctx, jwtService, "Bearer "+token)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("validator error is wrapped", func(t *testing.T) {
		validator := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		_, err := middleware.Authorize(ctx, validator, "Bearer anything")
		assert.ErrorIs(t, err, middleware.ErrAuthenticationRequired)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := newJWTService(t)
	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	var (
		called  bool
		boundID uuid.UUID
		boundOK bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		boundID, boundOK = middleware.GetUserID(r)
		w.WriteHeader(http.StatusCreated)
	})
	handler := middleware.NewAuthMiddleware(jwtService).Authenticate(next)

	t.Run("valid token binds subject", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/questions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, called)
		assert.True(t, boundOK)
		assert.Equal(t, userID, boundID)
	})

	rejected := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Token " + token},
		{"tampered token", "Bearer " + token + "x"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodPost, "/questions", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called, "wrapped handler must not run")
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Unauthorized", body.Error)
		})
	}

	t.Run("expired token", func(t *testing.T) {
		called = false
		expired := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		h := middleware.NewAuthMiddleware(expired).Authenticate(next)
		req := httptest.NewRequest(http.MethodPost, "/questions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("subject binding does not leak between requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/questions", nil)
		_, ok := middleware.GetUserID(req)
		assert.False(t, ok)
	})

}
