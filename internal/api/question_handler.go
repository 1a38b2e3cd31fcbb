package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/phrazzld/askr-api/internal/service"
)

// QuestionHandler handles question creation for authenticated users.
type QuestionHandler struct {
	questions service.QuestionService
	logger    *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		questions: questions,
		logger:    logger.With(slog.String("component", "question_handler")),
	}
}

// CreateQuestion handles POST /questions. It must be mounted behind
// AuthMiddleware.Authenticate; the author is the token's subject.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	authorID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.questions.CreateQuestion(r.Context(), authorID, req.Title, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create question")
		return
	}

	log.Debug("question created",
		slog.String("question_id", q.ID.String()),
		slog.String("slug", q.Slug))
	shared.RespondWithStatus(w, http.StatusCreated)
}
