package store

import (
	"context"
	"database/sql"
)

// DBTX is the query executor the Postgres stores run against. Both *sql.DB
// and *sql.Tx satisfy it, so a store can work on the pool or inside a
// transaction. It carries only the methods the stores actually call.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
