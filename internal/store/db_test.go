package store

import "database/sql"

// Both the pool and a transaction must satisfy the executor interface.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
