package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/askr-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrInvalidCredentials(t *testing.T) {
	assert.Equal(t, "user credentials do not match", ErrInvalidCredentials.Error())

	wrapped := fmt.Errorf("authenticate: %w", ErrInvalidCredentials)
	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))

	assert.False(t, errors.Is(store.ErrUserNotFound, ErrInvalidCredentials),
		"store lookups must be translated, not leaked")
}
