package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/store"
)

// ItemService provides catalog operations over shopping list items.
//
// GetByID is the only operation with logic of its own: it converts the
// store's absence sentinel into ErrItemNotFound. Everything else delegates
// straight to the store.
type ItemService interface {
	GetAll(ctx context.Context) ([]*domain.ShoppingListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	Create(ctx context.Context, input store.CreateItemInput) (*domain.ShoppingListItem, error)
	Update(ctx context.Context, id uuid.UUID, patch store.ItemPatch) (*domain.ShoppingListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemServiceImpl implements the ItemService interface.
type ItemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemService creates a new ItemService backed by the given store.
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) *ItemServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With("component", "item_service"),
	}
}

// Ensure ItemServiceImpl implements ItemService interface
var _ ItemService = (*ItemServiceImpl)(nil)

// GetAll returns every stored item.
func (s *ItemServiceImpl) GetAll(ctx context.Context) ([]*domain.ShoppingListItem, error) {
	items, err := s.itemStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetByID returns the item with the given id, or ErrItemNotFound when the
// store reports absence. This is the only place the absence sentinel is
// turned into a user-visible error.
func (s *ItemServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Create persists a new item.
func (s *ItemServiceImpl) Create(
	ctx context.Context,
	input store.CreateItemInput,
) (*domain.ShoppingListItem, error) {
	item, err := s.itemStore.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Debug("item created", "item_id", item.ID)
	return item, nil
}

// Update applies a partial update and returns the re-read item. The item
// can disappear between any existence check and the post-merge re-read, so
// absence is converted to ErrItemNotFound here as well.
func (s *ItemServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch store.ItemPatch,
) (*domain.ShoppingListItem, error) {
	item, err := s.itemStore.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes the item by id. Deleting an absent item is not an error.
func (s *ItemServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.itemStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
