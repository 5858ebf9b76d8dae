package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestShoppingListItemValidate(t *testing.T) {
	valid := ShoppingListItem{
		ID:        uuid.New(),
		Name:      "Apple",
		Quantity:  5,
		UserID:    "u1",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name    string
		mutate  func(i *ShoppingListItem)
		wantErr error
	}{
		{
			name:    "valid item",
			mutate:  func(i *ShoppingListItem) {},
			wantErr: nil,
		},
		{
			name:    "nil ID",
			mutate:  func(i *ShoppingListItem) { i.ID = uuid.Nil },
			wantErr: ErrEmptyItemID,
		},
		{
			name:    "empty name",
			mutate:  func(i *ShoppingListItem) { i.Name = "" },
			wantErr: ErrEmptyItemName,
		},
		{
			name:    "zero quantity",
			mutate:  func(i *ShoppingListItem) { i.Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			mutate:  func(i *ShoppingListItem) { i.Quantity = -3 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "empty user",
			mutate:  func(i *ShoppingListItem) { i.UserID = "" },
			wantErr: ErrEmptyItemUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			if err := item.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
