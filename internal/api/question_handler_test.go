package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/askr-api/internal/api"
	"github.com/phrazzld/askr-api/internal/api/shared"
	"github.com/phrazzld/askr-api/internal/mocks"
	"github.com/phrazzld/askr-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionHandler(t *testing.T) (*api.QuestionHandler, *mocks.MockQuestionStore) {
	t.Helper()
	questions := &mocks.MockQuestionStore{}
	svc, err := service.NewQuestionService(questions, nil)
	require.NoError(t, err)
	return api.NewQuestionHandler(svc, nil), questions
}

func postQuestion(ctx context.Context, h *api.QuestionHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(body)).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.CreateQuestion(rr, req)
	return rr
}

func TestQuestionHandler_CreateQuestion(t *testing.T) {
	authorID := uuid.New()
	authed := shared.WithUserID(context.Background(), authorID)

	t.Run("created with slug and author", func(t *testing.T) {
		h, questions := newQuestionHandler(t)

		rr := postQuestion(authed, h, `{"title":"My First Post!","content":"hello"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Empty(t, rr.Body.String())
		require.Len(t, questions.Questions, 1)
		assert.Equal(t, "my-first-post", questions.Questions[0].Slug)
		assert.Equal(t, authorID, questions.Questions[0].AuthorID)
	})

	t.Run("symbol only title accepted", func(t *testing.T) {
		h, questions := newQuestionHandler(t)

		rr := postQuestion(authed, h, `{"title":"???","content":"x"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		require.Len(t, questions.Questions, 1)
		assert.Equal(t, "", questions.Questions[0].Slug)
	})

	t.Run("missing content", func(t *testing.T) {
		h, questions := newQuestionHandler(t)

		rr := postQuestion(authed, h, `{"title":"T"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid content: required field", errorMessage(t, rr))
		assert.Empty(t, questions.Questions)
	})

	t.Run("no bound subject", func(t *testing.T) {
		h, questions := newQuestionHandler(t)

		rr := postQuestion(context.Background(), h, `{"title":"T","content":"c"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, questions.Questions)
	})
}
