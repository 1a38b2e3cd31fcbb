package mocks

import "github.com/phrazzld/askr-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default Hash prefixes the plaintext with "hashed:" and Verify checks
// for exactly that form.
type MockPasswordHasher struct {
	HashFn   func(plaintext string) (string, error)
	VerifyFn func(digest, plaintext string) bool

	// HashCallCount and VerifyCallCount track calls for verification
	HashCallCount   int
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(plaintext)
	}
	return "hashed:" + plaintext, nil
}

// Verify implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Verify(digest, plaintext string) bool {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(digest, plaintext)
	}
	return digest == "hashed:"+plaintext
}
