// Package db holds the typed query layer for the shopping list schema.
// It follows the sqlc calling convention: construct with New against either
// a *sql.DB or a *sql.Tx, so repositories can reuse the same queries inside
// and outside transactions.
package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB / *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New returns Queries bound to the given connection or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries executes the shopping list SQL statements.
type Queries struct {
	db DBTX
}
