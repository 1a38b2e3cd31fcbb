package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/phrazzld/askr-api/internal/service"
)

// AuthHandler handles account creation and login.
type AuthHandler struct {
	accounts service.AccountService
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		accounts: accounts,
		logger:   logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /accounts. It answers 201 with an empty body; no
// token is issued until the client logs in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("account created", slog.String("user_id", user.ID.String()))
	shared.RespondWithStatus(w, http.StatusCreated)
}

// Login handles POST /sessions and returns a signed access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SessionResponse{AccessToken: token})
}
