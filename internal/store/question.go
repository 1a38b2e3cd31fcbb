package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/askr-api/internal/domain"
)

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves a new question.
	// Returns ErrInvalidEntity if the author does not exist.
	// Slugs are not unique; duplicates are stored as-is.
	Create(ctx context.Context, question *domain.Question) error

	// WithTx returns a QuestionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) QuestionStore
}
