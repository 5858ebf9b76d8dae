// Package testdb provides utilities for database-backed tests. It only
// depends on the migrations and standard database packages, not on store
// implementations.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/pantrydev/pantry-api/migrations"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// URL returns the database URL for integration tests. It checks
// DATABASE_URL and PANTRY_TEST_DB_URL in that order.
func URL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("PANTRY_TEST_DB_URL")
}

// New opens a connection to the test database, applies the embedded
// migrations and truncates the application tables so every test starts
// clean. Tests are skipped when no test database is configured.
func New(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := URL()
	if dbURL == "" {
		t.Skip("set DATABASE_URL or PANTRY_TEST_DB_URL to run database tests")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."), "failed to apply migrations")

	Reset(t, db)
	return db
}

// Reset truncates the application tables.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, "TRUNCATE TABLE shopping_item_list, users")
	require.NoError(t, err, "failed to truncate tables")
}
