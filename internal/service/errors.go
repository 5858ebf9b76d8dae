package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes and fixed user-facing messages.
var (
	// ErrUserExists indicates a registration attempt with an email that is
	// already taken. API layer maps this to HTTP 400.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for every login failure, whether
	// the email is unknown or the password does not match. The two causes
	// are deliberately indistinguishable to resist username enumeration.
	// API layer maps this to HTTP 400.
	ErrInvalidCredentials = errors.New("user or password is incorrect")

	// ErrItemNotFound indicates the requested shopping list item does not
	// exist. API layer maps this to HTTP 404.
	ErrItemNotFound = errors.New("shopping list item not found")
)
