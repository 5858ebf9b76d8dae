package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pantrydev/pantry-api/internal/domain"
	"github.com/pantrydev/pantry-api/internal/store"
)

// itemColumns is the select list shared by every item query.
const itemColumns = "id, name, quantity, user_id, created_at, is_purchased"

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db store.DBTX
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresItemStore(db store.DBTX) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresItemStore{db: db}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// GetAll implements store.ItemStore.GetAll.
func (s *PostgresItemStore) GetAll(ctx context.Context) ([]*domain.ShoppingListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM shopping_item_list", itemColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewStoreError("item", "get_all", "failed to query rows", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*domain.ShoppingListItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, store.NewStoreError("item", "get_all", "failed to scan row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("item", "get_all", "failed to iterate rows", err)
	}

	return items, nil
}

// GetByID implements store.ItemStore.GetByID.
// Returns (nil, nil) when the identifier does not resolve to a row.
func (s *PostgresItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM shopping_item_list WHERE id = $1", itemColumns)

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, store.NewStoreError("item", "get_by_id", "failed to query row", err)
	}

	return item, nil
}

// Create implements store.ItemStore.Create. The identifier is assigned by
// the database; the returned item is rebuilt from the input plus that id
// without re-reading the row.
func (s *PostgresItemStore) Create(
	ctx context.Context,
	input store.CreateItemInput,
) (*domain.ShoppingListItem, error) {
	createdAt, err := time.Parse(time.RFC3339, input.CreatedAt)
	if err != nil {
		return nil, store.NewStoreError("item", "create", "failed to parse createdAt timestamp", err)
	}

	query := `
		INSERT INTO shopping_item_list (name, quantity, user_id, created_at, is_purchased)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err = s.db.QueryRowContext(
		ctx,
		query,
		input.Name,
		input.Quantity,
		input.UserID,
		createdAt,
		input.IsPurchased,
	).Scan(&id)
	if err != nil {
		return nil, store.NewStoreError("item", "create", "failed to insert row", err)
	}

	return &domain.ShoppingListItem{
		ID:          id,
		Name:        input.Name,
		Quantity:    input.Quantity,
		UserID:      input.UserID,
		CreatedAt:   createdAt,
		IsPurchased: input.IsPurchased,
	}, nil
}

// Update implements store.ItemStore.Update. It applies the patch's
// field-set as a partial UPDATE, then re-reads the row. An empty field-set
// skips the UPDATE entirely; the re-read still happens, so updating an
// absent id yields (nil, nil).
func (s *PostgresItemStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch store.ItemPatch,
) (*domain.ShoppingListItem, error) {
	query, args := buildItemUpdate(id, patch)
	if query != "" {
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return nil, store.NewStoreError("item", "update", "failed to execute update", err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.ItemStore.Delete. Deleting an absent item is not
// an error; the row count is not inspected.
func (s *PostgresItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM shopping_item_list WHERE id = $1"

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return store.NewStoreError("item", "delete", "failed to delete row", err)
	}

	return nil
}

// buildItemUpdate assembles the partial UPDATE statement for the fields the
// patch carries. Returns an empty query when the field-set is empty.
// Columns are sorted so the statement is deterministic.
func buildItemUpdate(id uuid.UUID, patch store.ItemPatch) (string, []any) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return "", nil
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE shopping_item_list SET %s WHERE id = $%d",
		strings.Join(assignments, ", "),
		len(args),
	)
	return query, args
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.ShoppingListItem, error) {
	var item domain.ShoppingListItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.UserID,
		&item.CreatedAt,
		&item.IsPurchased,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
