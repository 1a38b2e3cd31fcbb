package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Question
var (
	ErrEmptyQuestionID      = errors.New("question ID cannot be empty")
	ErrEmptyQuestionAuthor  = errors.New("question author ID cannot be empty")
	ErrEmptyQuestionTitle   = errors.New("question title cannot be empty")
	ErrEmptyQuestionContent = errors.New("question content cannot be empty")
)

// Question is a piece of content authored by a user. Slug is derived from
// Title when the question is created and is not guaranteed to be unique.
type Question struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestion creates a Question owned by authorID, deriving its slug from title.
// Returns an error if validation fails.
func NewQuestion(authorID uuid.UUID, title, content string) (*Question, error) {
	now := time.Now().UTC()
	q := &Question{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		Slug:      Slugify(title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// An empty slug is valid: titles made only of symbols produce one.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrEmptyQuestionID
	}

	if q.AuthorID == uuid.Nil {
		return ErrEmptyQuestionAuthor
	}

	if q.Title == "" {
		return ErrEmptyQuestionTitle
	}

	if q.Content == "" {
		return ErrEmptyQuestionContent
	}

	return nil
}
