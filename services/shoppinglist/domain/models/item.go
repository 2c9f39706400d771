package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is a single product entry belonging to exactly one List. The list
// link and owner are set at creation and never reassigned.
type Item struct {
	ID            uuid.UUID
	ListID        uuid.UUID
	OwnerID       uuid.UUID // duplicated from the parent list for scoped queries
	Name          Name
	Quantity      *float64
	Unit          *string
	Category      *string
	IsChecked     bool
	IsAISuggested bool
	AIContext     *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewItem constructs an unchecked Item with a generated ID and
// CreatedAt == UpdatedAt stamped to the current time.
func NewItem(ownerID, listID uuid.UUID, name Name) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner id must be set")
	}
	if listID == uuid.Nil {
		return nil, fmt.Errorf("list id must be set")
	}
	now := time.Now().UTC()
	return &Item{
		ID:        uuid.New(),
		ListID:    listID,
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateQuantity enforces the positive-quantity rule for set quantities.
func ValidateQuantity(q float64) error {
	if q <= 0 {
		return fmt.Errorf("quantity must be positive, got %v", q)
	}
	return nil
}

// ItemPatch is a sparse update: nil fields are left untouched.
type ItemPatch struct {
	Name          *Name
	Quantity      *float64
	Unit          *string
	Category      *string
	Notes         *string
	IsChecked     *bool
	IsAISuggested *bool
	AIContext     *string
}

// IsZero reports whether the patch carries no changes.
func (p ItemPatch) IsZero() bool {
	return p.Name == nil && p.Quantity == nil && p.Unit == nil &&
		p.Category == nil && p.Notes == nil && p.IsChecked == nil &&
		p.IsAISuggested == nil && p.AIContext == nil
}

// Apply merges the patch into the item and advances UpdatedAt to now.
func (i *Item) Apply(p ItemPatch, now time.Time) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Quantity != nil {
		i.Quantity = p.Quantity
	}
	if p.Unit != nil {
		i.Unit = p.Unit
	}
	if p.Category != nil {
		i.Category = p.Category
	}
	if p.Notes != nil {
		i.Notes = p.Notes
	}
	if p.IsChecked != nil {
		i.IsChecked = *p.IsChecked
	}
	if p.IsAISuggested != nil {
		i.IsAISuggested = *p.IsAISuggested
	}
	if p.AIContext != nil {
		i.AIContext = p.AIContext
	}
	i.UpdatedAt = now
}
