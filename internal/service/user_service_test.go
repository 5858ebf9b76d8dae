package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/mocks"
	"github.com/pantrydev/pantry-api/internal/service/auth"
)

func TestRegisterNewUser(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	hasher := auth.NewBcryptHasher()
	svc := NewUserService(userStore, hasher, nil)

	err := svc.Register(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	stored := userStore.Users["a@x.com"]
	require.NotNil(t, stored)

	// The persisted credential verifies against the original plaintext and
	// never equals it.
	assert.NotEqual(t, "secret", stored.HashedPassword)
	assert.Empty(t, stored.Password)
	assert.NoError(t, hasher.Compare(stored.HashedPassword, "secret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, nil)

	require.NoError(t, svc.Register(context.Background(), "a@x.com", "secret"))

	// A second registration fails regardless of the password supplied.
	err := svc.Register(context.Background(), "a@x.com", "different-password")
	assert.ErrorIs(t, err, ErrUserExists)

	err = svc.Register(context.Background(), "a@x.com", "secret")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, nil)

	err := svc.Register(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestRegisterStoreFailures(t *testing.T) {
	storeErr := errors.New("store unavailable")

	t.Run("lookup failure propagates", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		userStore.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			return nil, storeErr
		}
		svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, nil)

		err := svc.Register(context.Background(), "a@x.com", "secret")
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return storeErr
		}
		svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, nil)

		err := svc.Register(context.Background(), "a@x.com", "secret")
		assert.ErrorIs(t, err, storeErr)
	})
}

// TestRegisterCheckThenInsertRace characterizes the documented race: the
// uniqueness check and the insert are separate round trips, so two
// registrations whose lookups both run before either insert both succeed.
// This pins down observed behavior; it is not an invariant worth keeping.
func TestRegisterCheckThenInsertRace(t *testing.T) {
	userStore := mocks.NewMockUserStore()

	var inserted []*domain.User
	userStore.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		// Both lookups observe an empty store.
		return nil, nil
	}
	userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
		inserted = append(inserted, user)
		return nil
	}

	svc := NewUserService(userStore, &mocks.MockPasswordHasher{}, nil)

	require.NoError(t, svc.Register(context.Background(), "a@x.com", "secret"))
	require.NoError(t, svc.Register(context.Background(), "a@x.com", "secret"))

	assert.Len(t, inserted, 2)
	assert.Equal(t, inserted[0].Email, inserted[1].Email)
}
