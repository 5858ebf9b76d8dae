package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create.
//
// The users table carries no unique index on email: uniqueness is only the
// account service's read-then-write check, preserving the original
// check-then-insert behavior.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", err)
	}

	query := `
		INSERT INTO users (id, email, password)
		VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Email, user.HashedPassword); err != nil {
		return store.NewStoreError("user", "create", "failed to insert row", err)
	}

	return nil
}

// FindByEmail implements store.UserStore.FindByEmail.
// Returns (nil, nil) when no user has that email.
func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password
		FROM users
		WHERE email = $1
		LIMIT 1`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.HashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, store.NewStoreError("user", "find_by_email", "failed to query row", err)
	}

	return &user, nil
}
