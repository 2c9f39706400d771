package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// List is the aggregate root for a user's shopping list.
// Archiving is the deletion proxy: archived lists are hidden from default
// listings but never removed.
type List struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID // tenant scope — always filter by this in queries
	Name       Name
	StoreName  *string
	Notes      *string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewList constructs a valid List with a generated ID and
// CreatedAt == UpdatedAt stamped to the current time.
func NewList(ownerID uuid.UUID, name Name, storeName, notes *string) (*List, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner id must be set")
	}
	now := time.Now().UTC()
	return &List{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		StoreName: storeName,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ListPatch is a sparse update: nil fields are left untouched. A non-nil
// pointer to a zero value means "explicitly set", so clearing a field and
// omitting it remain distinguishable.
type ListPatch struct {
	Name       *Name
	StoreName  *string
	Notes      *string
	IsArchived *bool
}

// IsZero reports whether the patch carries no changes.
func (p ListPatch) IsZero() bool {
	return p.Name == nil && p.StoreName == nil && p.Notes == nil && p.IsArchived == nil
}

// Apply merges the patch into the list and advances UpdatedAt to now.
// UpdatedAt moves even for an empty patch: every successful update call
// counts as a mutation.
func (l *List) Apply(p ListPatch, now time.Time) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.StoreName != nil {
		l.StoreName = p.StoreName
	}
	if p.Notes != nil {
		l.Notes = p.Notes
	}
	if p.IsArchived != nil {
		l.IsArchived = *p.IsArchived
	}
	l.UpdatedAt = now
}
