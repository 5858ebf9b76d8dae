package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common shopping list item validation errors
var (
	ErrEmptyItemID     = errors.New("item ID cannot be empty")
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")
	ErrEmptyItemUser   = errors.New("item user cannot be empty")
)

// ShoppingListItem is a single entry on a user's shopping list.
//
// The UserID field references a User by identifier but is not enforced as a
// referential constraint anywhere in the system. Quantity is kept >= 1 at
// the validation boundary; the store trusts what it is handed.
type ShoppingListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	UserID      string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	IsPurchased bool      `json:"isPurchased"`
}

// Validate checks if the ShoppingListItem has valid data.
func (i *ShoppingListItem) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItemID
	}

	if i.Name == "" {
		return ErrEmptyItemName
	}

	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}

	if i.UserID == "" {
		return ErrEmptyItemUser
	}

	return nil
}
