package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestItemPatchFields(t *testing.T) {
	tests := []struct {
		name  string
		patch ItemPatch
		want  map[string]any
	}{
		{
			name:  "empty patch produces empty field-set",
			patch: ItemPatch{},
			want:  map[string]any{},
		},
		{
			name: "all fields supplied",
			patch: ItemPatch{
				Name:        "Bananas",
				Quantity:    3,
				UserID:      "u1",
				IsPurchased: boolPtr(true),
			},
			want: map[string]any{
				ItemFieldName:        "Bananas",
				ItemFieldQuantity:    3,
				ItemFieldUser:        "u1",
				ItemFieldIsPurchased: true,
			},
		},
		{
			name:  "zero quantity is excluded",
			patch: ItemPatch{Quantity: 0},
			want:  map[string]any{},
		},
		{
			name:  "false isPurchased is included",
			patch: ItemPatch{IsPurchased: boolPtr(false)},
			want:  map[string]any{ItemFieldIsPurchased: false},
		},
		{
			name:  "empty strings are excluded",
			patch: ItemPatch{Name: "", UserID: ""},
			want:  map[string]any{},
		},
		{
			name:  "name only",
			patch: ItemPatch{Name: "Milk"},
			want:  map[string]any{ItemFieldName: "Milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Fields())
		})
	}
}

func TestItemPatchAsymmetry(t *testing.T) {
	// The numeric and boolean inclusion rules differ on purpose: a zero
	// quantity is dropped from the field-set, while an explicit false
	// isPurchased survives.
	zeroQuantity := ItemPatch{Quantity: 0, IsPurchased: boolPtr(false)}

	fields := zeroQuantity.Fields()

	assert.NotContains(t, fields, ItemFieldQuantity)
	assert.Contains(t, fields, ItemFieldIsPurchased)
	assert.Equal(t, false, fields[ItemFieldIsPurchased])
}
