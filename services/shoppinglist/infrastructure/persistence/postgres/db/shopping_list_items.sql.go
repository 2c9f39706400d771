package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const itemColumns = `id, list_id, owner_id, name, quantity, unit, category,
is_checked, is_ai_suggested, ai_context, notes, created_at, updated_at`

const insertItem = `
INSERT INTO shopping_list_items (id, list_id, owner_id, name, quantity, unit, category,
is_checked, is_ai_suggested, ai_context, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

type InsertItemParams struct {
	ID            uuid.UUID
	ListID        uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Quantity      sql.NullFloat64
	Unit          sql.NullString
	Category      sql.NullString
	IsChecked     bool
	IsAISuggested bool
	AIContext     sql.NullString
	Notes         sql.NullString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) InsertItem(ctx context.Context, arg InsertItemParams) error {
	_, err := q.db.ExecContext(ctx, insertItem,
		arg.ID, arg.ListID, arg.OwnerID, arg.Name, arg.Quantity, arg.Unit,
		arg.Category, arg.IsChecked, arg.IsAISuggested, arg.AIContext,
		arg.Notes, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getItemByID = `
SELECT ` + itemColumns + `
FROM shopping_list_items
WHERE id = $1 AND owner_id = $2 AND list_id = $3
`

type GetItemByIDParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	ListID  uuid.UUID
}

func (q *Queries) GetItemByID(ctx context.Context, arg GetItemByIDParams) (ShoppingListItem, error) {
	row := q.db.QueryRowContext(ctx, getItemByID, arg.ID, arg.OwnerID, arg.ListID)
	var i ShoppingListItem
	err := scanItem(row.Scan, &i)
	return i, err
}

const findItemsByList = `
SELECT ` + itemColumns + `
FROM shopping_list_items
WHERE owner_id = $1 AND list_id = $2
ORDER BY updated_at DESC
`

type FindItemsByListParams struct {
	OwnerID uuid.UUID
	ListID  uuid.UUID
}

func (q *Queries) FindItemsByList(ctx context.Context, arg FindItemsByListParams) ([]ShoppingListItem, error) {
	rows, err := q.db.QueryContext(ctx, findItemsByList, arg.OwnerID, arg.ListID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ShoppingListItem
	for rows.Next() {
		var i ShoppingListItem
		if err := scanItem(rows.Scan, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateItem = `
UPDATE shopping_list_items
SET name = $1, quantity = $2, unit = $3, category = $4, is_checked = $5,
is_ai_suggested = $6, ai_context = $7, notes = $8, updated_at = $9
WHERE id = $10 AND owner_id = $11 AND list_id = $12
`

type UpdateItemParams struct {
	Name          string
	Quantity      sql.NullFloat64
	Unit          sql.NullString
	Category      sql.NullString
	IsChecked     bool
	IsAISuggested bool
	AIContext     sql.NullString
	Notes         sql.NullString
	UpdatedAt     time.Time
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ListID        uuid.UUID
}

func (q *Queries) UpdateItem(ctx context.Context, arg UpdateItemParams) error {
	_, err := q.db.ExecContext(ctx, updateItem,
		arg.Name, arg.Quantity, arg.Unit, arg.Category, arg.IsChecked,
		arg.IsAISuggested, arg.AIContext, arg.Notes, arg.UpdatedAt,
		arg.ID, arg.OwnerID, arg.ListID,
	)
	return err
}

const deleteItem = `
DELETE FROM shopping_list_items
WHERE id = $1 AND owner_id = $2 AND list_id = $3
`

type DeleteItemParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	ListID  uuid.UUID
}

func (q *Queries) DeleteItem(ctx context.Context, arg DeleteItemParams) error {
	_, err := q.db.ExecContext(ctx, deleteItem, arg.ID, arg.OwnerID, arg.ListID)
	return err
}

func scanItem(scan func(dest ...any) error, i *ShoppingListItem) error {
	return scan(
		&i.ID, &i.ListID, &i.OwnerID, &i.Name, &i.Quantity, &i.Unit,
		&i.Category, &i.IsChecked, &i.IsAISuggested, &i.AIContext,
		&i.Notes, &i.CreatedAt, &i.UpdatedAt,
	)
}
