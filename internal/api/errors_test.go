package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrydev/pantry-api/internal/api"
	"github.com/pantrydev/pantry-api/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user exists", service.ErrUserExists, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"item not found", service.ErrItemNotFound, http.StatusNotFound},
		{"wrapped sentinel", fmt.Errorf("lookup: %w", service.ErrItemNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"user exists", service.ErrUserExists, "User already exists"},
		{"invalid credentials", service.ErrInvalidCredentials, "User or password is incorrect"},
		{"item not found", service.ErrItemNotFound, "Shopping list item not found"},
		{"unknown error", errors.New("pq: connection refused"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := api.GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.want, msg)
			assert.NotContains(t, msg, "pq:")
		})
	}
}
