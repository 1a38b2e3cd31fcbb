package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()
	h := NewBcryptHasher()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		digest, err := h.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", digest)
		assert.True(t, h.Verify(digest, "secret1"))
		assert.False(t, h.Verify(digest, "secret2"))
	})

	t.Run("uses fixed cost", func(t *testing.T) {
		t.Parallel()
		digest, err := h.Hash("secret1")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(digest))
		require.NoError(t, err)
		assert.Equal(t, DefaultBcryptCost, cost)
	})

	t.Run("salted", func(t *testing.T) {
		t.Parallel()
		a, err := h.Hash("same")
		require.NoError(t, err)
		b, err := h.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("malformed digest never matches", func(t *testing.T) {
		t.Parallel()
		assert.False(t, h.Verify("", "secret1"))
		assert.False(t, h.Verify("not-a-bcrypt-digest", "secret1"))
		assert.False(t, h.Verify("$2a$08$short", "secret1"))
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		_, err := h.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}
