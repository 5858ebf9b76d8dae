package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/service"
)

// Fixed user-facing messages. These are part of the API contract: both
// login failure causes share one message so the response never reveals
// whether the email exists.
const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "User or password is incorrect"
	msgItemNotFound       = "Shopping list item not found"
	msgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.As(err, &validationErr):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUserExists):
		return msgUserExists

	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials

	case errors.Is(err, service.ErrItemNotFound):
		return msgItemNotFound

	case errors.As(err, new(*domain.ValidationError)):
		return "Validation error"

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError turns a go-playground/validator error into a
// user-friendly message naming the first offending field, without echoing
// the submitted value.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format:
	// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "value too small"
	case "max":
		return "value too large"
	default:
		return "validation failed"
	}
}
