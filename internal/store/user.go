package store

import (
	"context"

	"github.com/pantrydev/pantry-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// Absence is not an error at this layer: FindByEmail returns (nil, nil)
// when no user matches. Services decide what absence means for their
// operation (registration treats it as success, login as failure).
type UserStore interface {
	// Create saves a new user to the store. The user's HashedPassword
	// must already be populated; this layer never hashes.
	//
	// Create performs no uniqueness check of its own. The read-then-write
	// sequence in the account service is two independent round trips, so
	// two concurrent registrations with the same email can both insert.
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail retrieves a user by exact, case-sensitive email match.
	// Returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
