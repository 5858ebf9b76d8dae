package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/service/auth"
	"github.com/pantrydev/pantry-api/internal/store"
)

// UserService provides account management operations.
type UserService interface {
	// Register creates a new user with the given email and plaintext
	// password, hashing the password before persistence.
	// Returns ErrUserExists when a user with that email already exists.
	Register(ctx context.Context, email, password string) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService with its collaborators.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.Register.
//
// The uniqueness check and the insert are two independent store round
// trips with no transaction spanning them; concurrent registrations with
// the same email can both pass the check and both insert.
func (s *UserServiceImpl) Register(ctx context.Context, email, password string) error {
	existing, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to look up user by email", "error", err)
		return fmt.Errorf("failed to look up user by email: %w", err)
	}
	if existing != nil {
		// No fields beyond presence are compared.
		return ErrUserExists
	}

	user, err := domain.NewUser(email, password)
	if err != nil {
		return domain.NewValidationError("user", "invalid user data", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = ""
	user.HashedPassword = hashed

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("user registered", "user_id", user.ID)
	return nil
}
