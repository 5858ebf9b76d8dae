package mocks

import (
	"errors"

	"github.com/pantrydev/pantry-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// The default behavior "hashes" by prefixing the plaintext, which keeps
// hash/compare round trips working without bcrypt's cost.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

const mockHashPrefix = "hashed:"

// Hash implements the PasswordHasher.Hash method.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return mockHashPrefix + password, nil
}

// Compare implements the PasswordHasher.Compare method.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != mockHashPrefix+password {
		return errors.New("password mismatch")
	}
	return nil
}
