package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pantrydev/pantry-api/internal/service/auth"
	"github.com/pantrydev/pantry-api/internal/store"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// Login verifies the email and password against stored credentials
	// and returns a signed access token on success.
	// Returns ErrInvalidCredentials on any verification failure.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthService creates a new AuthService with its collaborators.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "auth_service"),
	}
}

// Ensure AuthServiceImpl implements AuthService interface
var _ AuthService = (*AuthServiceImpl)(nil)

// Login implements AuthService.Login.
//
// An unknown email and a wrong password both return the identical
// ErrInvalidCredentials value so the response never reveals which check
// failed.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to look up user by email", "error", err)
		return "", fmt.Errorf("failed to look up user by email: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
