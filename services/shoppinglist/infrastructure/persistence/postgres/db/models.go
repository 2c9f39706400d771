package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ShoppingList is a row of the shopping_lists table.
type ShoppingList struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	StoreName  sql.NullString
	Notes      sql.NullString
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShoppingListItem is a row of the shopping_list_items table.
type ShoppingListItem struct {
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
