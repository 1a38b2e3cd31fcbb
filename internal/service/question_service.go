package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/phrazzld/askr-api/internal/store"
)

// QuestionService creates questions on behalf of an authenticated user.
type QuestionService interface {
	// CreateQuestion stores a question owned by authorID with a slug derived
	// from title. Duplicate slugs are allowed.
	CreateQuestion(ctx context.Context, authorID uuid.UUID, title, content string) (*domain.Question, error)
}

type questionService struct {
	questionStore store.QuestionStore
	logger        *slog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionStore store.QuestionStore, logger *slog.Logger) (QuestionService, error) {
	if questionStore == nil {
		return nil, domain.NewValidationError("questionStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &questionService{
		questionStore: questionStore,
		logger:        logger.With(slog.String("component", "question_service")),
	}, nil
}

// CreateQuestion implements QuestionService.CreateQuestion
func (s *questionService) CreateQuestion(
	ctx context.Context,
	authorID uuid.UUID,
	title, content string,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q, err := domain.NewQuestion(authorID, title, content)
	if err != nil {
		log.Debug("question rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.questionStore.Create(ctx, q); err != nil {
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("author_id", authorID.String()))
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return q, nil
}
