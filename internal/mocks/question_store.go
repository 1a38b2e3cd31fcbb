package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/askr-api/internal/domain"
	"github.com/phrazzld/askr-api/internal/store"
)

// MockQuestionStore implements store.QuestionStore for testing
type MockQuestionStore struct {
	CreateFn func(ctx context.Context, q *domain.Question) error

	// Questions records every question stored by the default implementation.
	Questions []*domain.Question

	mu sync.Mutex
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

// Create implements the QuestionStore interface
func (m *MockQuestionStore) Create(ctx context.Context, q *domain.Question) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Questions = append(m.Questions, q)
	return nil
}

// WithTx implements the QuestionStore interface
func (m *MockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return m
}
