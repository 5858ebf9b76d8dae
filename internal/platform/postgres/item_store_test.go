package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pantrydev/pantry-api/internal/store"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestBuildItemUpdate(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		patch     store.ItemPatch
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty patch skips the update",
			patch:     store.ItemPatch{},
			wantQuery: "",
			wantArgs:  nil,
		},
		{
			name:      "single field",
			patch:     store.ItemPatch{Name: "Milk"},
			wantQuery: "UPDATE shopping_item_list SET name = $1 WHERE id = $2",
			wantArgs:  []any{"Milk", id},
		},
		{
			name: "all fields, columns in sorted order",
			patch: store.ItemPatch{
				Name:        "Milk",
				Quantity:    2,
				UserID:      "u1",
				IsPurchased: boolPtr(true),
			},
			wantQuery: "UPDATE shopping_item_list SET is_purchased = $1, name = $2, quantity = $3, user_id = $4 WHERE id = $5",
			wantArgs:  []any{true, "Milk", 2, "u1", id},
		},
		{
			name:      "zero quantity never reaches the statement",
			patch:     store.ItemPatch{Quantity: 0, Name: "Milk"},
			wantQuery: "UPDATE shopping_item_list SET name = $1 WHERE id = $2",
			wantArgs:  []any{"Milk", id},
		},
		{
			name:      "false isPurchased does reach the statement",
			patch:     store.ItemPatch{IsPurchased: boolPtr(false)},
			wantQuery: "UPDATE shopping_item_list SET is_purchased = $1 WHERE id = $2",
			wantArgs:  []any{false, id},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildItemUpdate(id, tt.patch)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
