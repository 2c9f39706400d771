package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const insertList = `
INSERT INTO shopping_lists (id, owner_id, name, store_name, notes, is_archived, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertListParams struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	StoreName  sql.NullString
	Notes      sql.NullString
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) InsertList(ctx context.Context, arg InsertListParams) error {
	_, err := q.db.ExecContext(ctx, insertList,
		arg.ID, arg.OwnerID, arg.Name, arg.StoreName, arg.Notes,
		arg.IsArchived, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getListByID = `
SELECT id, owner_id, name, store_name, notes, is_archived, created_at, updated_at
FROM shopping_lists
WHERE id = $1 AND owner_id = $2
`

type GetListByIDParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

func (q *Queries) GetListByID(ctx context.Context, arg GetListByIDParams) (ShoppingList, error) {
	row := q.db.QueryRowContext(ctx, getListByID, arg.ID, arg.OwnerID)
	var l ShoppingList
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Name, &l.StoreName, &l.Notes,
		&l.IsArchived, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

const findListsByOwner = `
SELECT id, owner_id, name, store_name, notes, is_archived, created_at, updated_at
FROM shopping_lists
WHERE owner_id = $1 AND ($2::boolean OR is_archived = FALSE)
ORDER BY updated_at DESC
LIMIT $3 OFFSET $4
`

type FindListsByOwnerParams struct {
	OwnerID         uuid.UUID
	IncludeArchived bool
	Limit           int32
	Offset          int32
}

func (q *Queries) FindListsByOwner(ctx context.Context, arg FindListsByOwnerParams) ([]ShoppingList, error) {
	rows, err := q.db.QueryContext(ctx, findListsByOwner,
		arg.OwnerID, arg.IncludeArchived, arg.Limit, arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []ShoppingList
	for rows.Next() {
		var l ShoppingList
		if err := rows.Scan(
			&l.ID, &l.OwnerID, &l.Name, &l.StoreName, &l.Notes,
			&l.IsArchived, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

const countListsByOwner = `
SELECT COUNT(*)
FROM shopping_lists
WHERE owner_id = $1 AND ($2::boolean OR is_archived = FALSE)
`

type CountListsByOwnerParams struct {
	OwnerID         uuid.UUID
	IncludeArchived bool
}

func (q *Queries) CountListsByOwner(ctx context.Context, arg CountListsByOwnerParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countListsByOwner, arg.OwnerID, arg.IncludeArchived)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateList = `
UPDATE shopping_lists
SET name = $1, store_name = $2, notes = $3, is_archived = $4, updated_at = $5
WHERE id = $6 AND owner_id = $7
`

type UpdateListParams struct {
	Name       string
	StoreName  sql.NullString
	Notes      sql.NullString
	IsArchived bool
	UpdatedAt  time.Time
	ID         uuid.UUID
	OwnerID    uuid.UUID
}

func (q *Queries) UpdateList(ctx context.Context, arg UpdateListParams) error {
	_, err := q.db.ExecContext(ctx, updateList,
		arg.Name, arg.StoreName, arg.Notes, arg.IsArchived,
		arg.UpdatedAt, arg.ID, arg.OwnerID,
	)
	return err
}

const touchList = `
UPDATE shopping_lists
SET updated_at = $1
WHERE id = $2 AND owner_id = $3
`

type TouchListParams struct {
	UpdatedAt time.Time
	ID        uuid.UUID
	OwnerID   uuid.UUID
}

// TouchList refreshes a list's updated_at. Item writes call this so the
// "recently active" ordering reflects child mutations.
func (q *Queries) TouchList(ctx context.Context, arg TouchListParams) error {
	_, err := q.db.ExecContext(ctx, touchList, arg.UpdatedAt, arg.ID, arg.OwnerID)
	return err
}
