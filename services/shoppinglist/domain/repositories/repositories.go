package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
)

// ListQueryOpts contains pagination and filter parameters for list queries.
type ListQueryOpts struct {
	Limit           int  // Maximum number of records to return
	Offset          int  // Number of records to skip
	IncludeArchived bool // Include archived lists in results
}

// ListRepository is the persistence interface for the List aggregate.
// Every method takes the owner ID as a mandatory parameter so that an
// unscoped query cannot be expressed.
type ListRepository interface {
	// Create persists a new List.
	Create(ctx context.Context, list *models.List) error

	// GetByID retrieves a list scoped to the owner.
	// Returns ErrListNotFound when no row matches.
	GetByID(ctx context.Context, ownerID, listID uuid.UUID) (*models.List, error)

	// FindByOwner retrieves a page of the owner's lists ordered by
	// updated_at descending, plus the total count over the full filtered
	// set (ignoring pagination). Archived lists are excluded unless
	// opts.IncludeArchived is set.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, opts ListQueryOpts) ([]*models.List, int, error)

	// Update applies a sparse patch to a list scoped to the owner and
	// refreshes updated_at. Returns the merged record, or ErrListNotFound.
	Update(ctx context.Context, ownerID, listID uuid.UUID, patch models.ListPatch) (*models.List, error)
}

// ItemRepository is the persistence interface for list items. Each write
// runs as one transaction that also refreshes the parent list's updated_at
// (the cascading touch), so the touch cannot be forgotten by callers.
type ItemRepository interface {
	// Insert verifies the parent list is owned by the caller
	// (ErrListNotFound otherwise), persists the item, touches the parent
	// list, and returns the item as re-read after the write.
	Insert(ctx context.Context, item *models.Item) (*models.Item, error)

	// UpdateSparse verifies the parent list, looks up the item scoped by
	// (itemID, ownerID, listID), returning ErrItemNotFound when absent, applies
	// only the provided fields, touches the parent list, and returns the
	// re-read item.
	UpdateSparse(ctx context.Context, ownerID, listID, itemID uuid.UUID, patch models.ItemPatch) (*models.Item, error)

	// Delete removes an item scoped by (itemID, ownerID, listID) and
	// touches the parent list. Returns ErrItemNotFound when absent,
	// never a silent no-op.
	Delete(ctx context.Context, ownerID, listID, itemID uuid.UUID) error

	// FindByList returns all items of one list scoped to the owner,
	// ordered by updated_at descending.
	FindByList(ctx context.Context, ownerID, listID uuid.UUID) ([]*models.Item, error)
}
