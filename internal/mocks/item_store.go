package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/store"
)

// MockItemStore implements store.ItemStore for testing.
// The default behavior is a full in-memory implementation of the store
// contract, including the patch field-set semantics, so tests can exercise
// partial updates end to end without a database.
type MockItemStore struct {
	GetAllFn  func(ctx context.Context) ([]*domain.ShoppingListItem, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	CreateFn  func(ctx context.Context, input store.CreateItemInput) (*domain.ShoppingListItem, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, patch store.ItemPatch) (*domain.ShoppingListItem, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	Items map[uuid.UUID]*domain.ShoppingListItem
}

// NewMockItemStore creates a new MockItemStore with an empty item map.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		Items: make(map[uuid.UUID]*domain.ShoppingListItem),
	}
}

// Ensure MockItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MockItemStore)(nil)

// GetAll implements the ItemStore.GetAll method.
func (m *MockItemStore) GetAll(ctx context.Context) ([]*domain.ShoppingListItem, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]*domain.ShoppingListItem, 0, len(m.Items))
	for _, item := range m.Items {
		copied := *item
		items = append(items, &copied)
	}
	return items, nil
}

// GetByID implements the ItemStore.GetByID method.
// Absence is (nil, nil), matching the store contract.
func (m *MockItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getLocked(id), nil
}

// Create implements the ItemStore.Create method, parsing the created-at
// string exactly like the real store does.
func (m *MockItemStore) Create(
	ctx context.Context,
	input store.CreateItemInput,
) (*domain.ShoppingListItem, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}

	createdAt, err := time.Parse(time.RFC3339, input.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse createdAt timestamp: %w", err)
	}

	item := &domain.ShoppingListItem{
		ID:          uuid.New(),
		Name:        input.Name,
		Quantity:    input.Quantity,
		UserID:      input.UserID,
		CreatedAt:   createdAt,
		IsPurchased: input.IsPurchased,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *item
	m.Items[item.ID] = &stored
	return item, nil
}

// Update implements the ItemStore.Update method by applying the patch's
// field-set as a merge, then re-reading.
func (m *MockItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch store.ItemPatch,
) (*domain.ShoppingListItem, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.Items[id]; ok {
		for field, value := range patch.Fields() {
			switch field {
			case store.ItemFieldName:
				existing.Name = value.(string)
			case store.ItemFieldQuantity:
				existing.Quantity = value.(int)
			case store.ItemFieldUser:
				existing.UserID = value.(string)
			case store.ItemFieldIsPurchased:
				existing.IsPurchased = value.(bool)
			}
		}
	}

	return m.getLocked(id), nil
}

// Delete implements the ItemStore.Delete method. Deleting an absent item
// is not an error.
func (m *MockItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Items, id)
	return nil
}

func (m *MockItemStore) getLocked(id uuid.UUID) *domain.ShoppingListItem {
	item, ok := m.Items[id]
	if !ok {
		return nil
	}
	copied := *item
	return &copied
}
