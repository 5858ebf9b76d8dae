package api

import (
	"time"

	"github.com/pantrydev/pantry-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for the user registration endpoint.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateItemRequest defines the payload for creating a shopping list item.
// IsPurchased is a pointer so that an explicit false still satisfies the
// required rule.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Quantity    int    `json:"quantity"    validate:"required,min=1"`
	User        string `json:"user"        validate:"required"`
	CreatedAt   string `json:"createdAt"   validate:"required"`
	IsPurchased *bool  `json:"isPurchased" validate:"required"`
}

// UpdateItemRequest defines the payload for partially updating a shopping
// list item. Every field is optional; a zero quantity is treated as
// not supplied, while isPurchased distinguishes absent from false through
// the pointer.
type UpdateItemRequest struct {
	Name        string `json:"name"        validate:"omitempty"`
	Quantity    int    `json:"quantity"    validate:"omitempty,min=1"`
	User        string `json:"user"        validate:"omitempty"`
	IsPurchased *bool  `json:"isPurchased" validate:"omitempty"`
}

// ItemResponse is the JSON shape of a shopping list item.
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	IsPurchased bool      `json:"isPurchased"`
}

// NewItemResponse maps a domain item to its response shape.
func NewItemResponse(item *domain.ShoppingListItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		User:        item.UserID,
		CreatedAt:   item.CreatedAt,
		IsPurchased: item.IsPurchased,
	}
}

// NewItemListResponse maps a slice of domain items to response shapes.
// A nil slice becomes an empty array, never null.
func NewItemListResponse(items []*domain.ShoppingListItem) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses
}
