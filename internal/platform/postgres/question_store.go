package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/platform/logger"
	"github.com/phrazzld/askr-api/internal/store"
)

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// Create implements store.QuestionStore.Create
// Returns store.ErrInvalidEntity if the author does not exist.
func (s *PostgresQuestionStore) Create(ctx context.Context, q *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := q.Validate(); err != nil {
		log.Warn("question validation failed during create",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO questions (id, author_id, title, content, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		q.ID,
		q.AuthorID,
		q.Title,
		q.Content,
		q.Slug,
		q.CreatedAt,
		q.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during question creation",
				slog.String("question_id", q.ID.String()),
				slog.String("author_id", q.AuthorID.String()))
			return fmt.Errorf("%w: author with ID %s not found", store.ErrInvalidEntity, q.AuthorID)
		}

		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("question_id", q.ID.String()))
		return MapError(err)
	}

	log.Info("question created successfully",
		slog.String("question_id", q.ID.String()),
		slog.String("author_id", q.AuthorID.String()),
		slog.String("slug", q.Slug))
	return nil
}

// WithTx implements store.QuestionStore.WithTx
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{db: tx, logger: s.logger}
}
