package mocks

import (
	"context"
	"sync"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// By default it keeps users in an in-memory map keyed by email; individual
// methods can be overridden through the function fields.
type MockUserStore struct {
	CreateFn      func(ctx context.Context, user *domain.User) error
	FindByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates a new MockUserStore with an empty users map.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore.Create method. The default behavior
// appends unconditionally, mirroring the real store's lack of a uniqueness
// constraint.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[user.Email] = user
	return nil
}

// FindByEmail implements the UserStore.FindByEmail method.
// Absence is (nil, nil), matching the store contract.
func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}
