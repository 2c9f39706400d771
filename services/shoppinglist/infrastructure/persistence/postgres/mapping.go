package postgres

import (
	"database/sql"

	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/infrastructure/persistence/postgres/db"
)

// rowToList maps a db.ShoppingList row to a domain models.List.
func rowToList(row db.ShoppingList) *models.List {
	return &models.List{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Name:       models.Name(row.Name),
		StoreName:  fromNullString(row.StoreName),
		Notes:      fromNullString(row.Notes),
		IsArchived: row.IsArchived,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

// rowToItem maps a db.ShoppingListItem row to a domain models.Item.
func rowToItem(row db.ShoppingListItem) *models.Item {
	return &models.Item{
		ID:            row.ID,
		ListID:        row.ListID,
		OwnerID:       row.OwnerID,
		Name:          models.Name(row.Name),
		Quantity:      fromNullFloat(row.Quantity),
		Unit:          fromNullString(row.Unit),
		Category:      fromNullString(row.Category),
		IsChecked:     row.IsChecked,
		IsAISuggested: row.IsAISuggested,
		AIContext:     fromNullString(row.AIContext),
		Notes:         fromNullString(row.Notes),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func fromNullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
