package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/pantrydev/pantry-api/internal/domain"
)

// CreateItemInput carries the fields for a new shopping list item. The
// created-at value arrives as the raw string from the API and is parsed
// into a native timestamp by the store.
type CreateItemInput struct {
	Name        string
	Quantity    int
	UserID      string
	CreatedAt   string
	IsPurchased bool
}

// ItemPatch describes a partial update of a shopping list item. Which
// fields actually reach the store is decided by Fields, not by the caller.
type ItemPatch struct {
	Name        string
	Quantity    int
	UserID      string
	IsPurchased *bool
}

// Column names used as field-set keys by implementations.
const (
	ItemFieldName        = "name"
	ItemFieldQuantity    = "quantity"
	ItemFieldUser        = "user_id"
	ItemFieldIsPurchased = "is_purchased"
)

// Fields returns the set of fields the patch explicitly carries, keyed by
// column name.
//
// The inclusion rules are deliberately asymmetric and must not be "fixed":
// Name, Quantity and UserID are included only when truthy (a zero Quantity
// is dropped), while IsPurchased is included whenever it was supplied at
// all, so an explicit false does overwrite the stored value.
func (p ItemPatch) Fields() map[string]any {
	fields := make(map[string]any)

	if p.Name != "" {
		fields[ItemFieldName] = p.Name
	}
	if p.Quantity != 0 {
		fields[ItemFieldQuantity] = p.Quantity
	}
	if p.UserID != "" {
		fields[ItemFieldUser] = p.UserID
	}
	if p.IsPurchased != nil {
		fields[ItemFieldIsPurchased] = *p.IsPurchased
	}

	return fields
}

// ItemStore defines the interface for shopping list item persistence.
//
// Like UserStore, absence is signalled with (nil, nil), never with an
// error; only the catalog service turns absence into a not-found failure.
type ItemStore interface {
	// GetAll returns every stored item. An empty store yields an empty
	// slice, not an error.
	GetAll(ctx context.Context) ([]*domain.ShoppingListItem, error)

	// GetByID retrieves one item by its identifier.
	// Returns (nil, nil) when the identifier does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)

	// Create persists a new document with a store-assigned identifier,
	// parsing input.CreatedAt into a timestamp first. The returned item
	// is rebuilt from the input plus the assigned id; it is not re-read
	// from the store.
	Create(ctx context.Context, input CreateItemInput) (*domain.ShoppingListItem, error)

	// Update applies the patch's field-set as a partial merge against the
	// stored document, then re-reads and returns the full item. An empty
	// field-set is a no-op merge followed by the normal re-read, so the
	// result can be (nil, nil) when the id never existed.
	Update(ctx context.Context, id uuid.UUID, patch ItemPatch) (*domain.ShoppingListItem, error)

	// Delete removes the item by identifier. Deleting an absent item is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
