package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/cartloom/pkg/database"
	"github.com/ghuser/cartloom/pkg/events"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
	domainevents "github.com/ghuser/cartloom/services/shoppinglist/domain/events"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/repositories"
	"github.com/ghuser/cartloom/services/shoppinglist/infrastructure/persistence/postgres/db"
)

// ListRepository implements repositories.ListRepository against PostgreSQL.
type ListRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewListRepository returns a ListRepository backed by the given connection
// pool and event bus. The bus is used to publish ListCreatedEvents in the
// same transaction as the insert (outbox pattern).
func NewListRepository(database *database.Database, bus *events.EventBus) *ListRepository {
	return &ListRepository{db: database, bus: bus}
}

// Create persists a new List and publishes a ListCreatedEvent within the same transaction.
func (r *ListRepository) Create(ctx context.Context, list *models.List) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertList(ctx, db.InsertListParams{
			ID:         list.ID,
			OwnerID:    list.OwnerID,
			Name:       list.Name.String(),
			StoreName:  toNullString(list.StoreName),
			Notes:      toNullString(list.Notes),
			IsArchived: list.IsArchived,
			CreatedAt:  list.CreatedAt,
			UpdatedAt:  list.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("insert list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, list); err != nil {
				return fmt.Errorf("publish list created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a list scoped to the owner. Returns ErrListNotFound when
// no row matches the (id, owner) pair.
func (r *ListRepository) GetByID(ctx context.Context, ownerID, listID uuid.UUID) (*models.List, error) {
	q := db.New(r.db.DB())
	row, err := q.GetListByID(ctx, db.GetListByIDParams{ID: listID, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query list: %w", err)
	}
	return rowToList(row), nil
}

// FindByOwner retrieves a page of the owner's lists ordered by updated_at
// descending plus the total count over the full filtered set.
func (r *ListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts repositories.ListQueryOpts) ([]*models.List, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindListsByOwner(ctx, db.FindListsByOwnerParams{
		OwnerID:         ownerID,
		IncludeArchived: opts.IncludeArchived,
		Limit:           int32(opts.Limit),
		Offset:          int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query lists: %w", err)
	}

	total, err := q.CountListsByOwner(ctx, db.CountListsByOwnerParams{
		OwnerID:         ownerID,
		IncludeArchived: opts.IncludeArchived,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count lists: %w", err)
	}

	lists := make([]*models.List, len(rows))
	for i, row := range rows {
		lists[i] = rowToList(row)
	}
	return lists, int(total), nil
}

// Update applies a sparse patch to a list scoped to the owner. The lookup,
// merge, and write run in one transaction; updated_at always advances.
func (r *ListRepository) Update(ctx context.Context, ownerID, listID uuid.UUID, patch models.ListPatch) (*models.List, error) {
	var merged *models.List
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetListByID(ctx, db.GetListByIDParams{ID: listID, OwnerID: ownerID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listdomain.ErrListNotFound
			}
			return fmt.Errorf("query list: %w", err)
		}

		list := rowToList(row)
		list.Apply(patch, time.Now().UTC())

		if err := q.UpdateList(ctx, db.UpdateListParams{
			Name:       list.Name.String(),
			StoreName:  toNullString(list.StoreName),
			Notes:      toNullString(list.Notes),
			IsArchived: list.IsArchived,
			UpdatedAt:  list.UpdatedAt,
			ID:         list.ID,
			OwnerID:    list.OwnerID,
		}); err != nil {
			return fmt.Errorf("update list: %w", err)
		}

		merged = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *ListRepository) publishCreated(tx *sql.Tx, list *models.List) error {
	event := domainevents.ListCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ListID:     list.ID,
		OwnerID:    list.OwnerID,
		Name:       list.Name.String(),
		StoreName:  list.StoreName,
		Notes:      list.Notes,
		IsArchived: list.IsArchived,
		OccurredAt: list.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicListCreated, msg)
}
