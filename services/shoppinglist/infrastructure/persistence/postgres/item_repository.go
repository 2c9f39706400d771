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
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/cartloom/pkg/database"
	"github.com/ghuser/cartloom/pkg/events"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
	domainevents "github.com/ghuser/cartloom/services/shoppinglist/domain/events"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Every write runs in a single transaction covering the parent-list check,
// the item write, the cascading touch of the parent list's updated_at, and
// the outbox event publish.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Insert persists a new item under an owned parent list and returns the row
// re-read after the write. Returns ErrListNotFound when the parent list does
// not exist for the caller.
func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) (*models.Item, error) {
	var persisted *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := r.checkParentList(ctx, q, item.OwnerID, item.ListID); err != nil {
			return err
		}

		if err := q.InsertItem(ctx, db.InsertItemParams{
			ID:            item.ID,
			ListID:        item.ListID,
			OwnerID:       item.OwnerID,
			Name:          item.Name.String(),
			Quantity:      toNullFloat(item.Quantity),
			Unit:          toNullString(item.Unit),
			Category:      toNullString(item.Category),
			IsChecked:     item.IsChecked,
			IsAISuggested: item.IsAISuggested,
			AIContext:     toNullString(item.AIContext),
			Notes:         toNullString(item.Notes),
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return listdomain.ErrListNotFound
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if err := q.TouchList(ctx, db.TouchListParams{
			UpdatedAt: item.UpdatedAt,
			ID:        item.ListID,
			OwnerID:   item.OwnerID,
		}); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, item, domainevents.ItemChangeCreated); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}

		return r.rereadItem(ctx, q, item.OwnerID, item.ListID, item.ID, &persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

// UpdateSparse applies only the provided fields to an item scoped by
// (itemID, ownerID, listID). The parent list's updated_at is refreshed even
// when the patch leaves every item field untouched.
func (r *ItemRepository) UpdateSparse(ctx context.Context, ownerID, listID, itemID uuid.UUID, patch models.ItemPatch) (*models.Item, error) {
	var persisted *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := r.checkParentList(ctx, q, ownerID, listID); err != nil {
			return err
		}

		row, err := q.GetItemByID(ctx, db.GetItemByIDParams{ID: itemID, OwnerID: ownerID, ListID: listID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listdomain.ErrItemNotFound
			}
			return fmt.Errorf("query item: %w", err)
		}

		item := rowToItem(row)
		now := time.Now().UTC()
		item.Apply(patch, now)

		if err := q.UpdateItem(ctx, db.UpdateItemParams{
			Name:          item.Name.String(),
			Quantity:      toNullFloat(item.Quantity),
			Unit:          toNullString(item.Unit),
			Category:      toNullString(item.Category),
			IsChecked:     item.IsChecked,
			IsAISuggested: item.IsAISuggested,
			AIContext:     toNullString(item.AIContext),
			Notes:         toNullString(item.Notes),
			UpdatedAt:     item.UpdatedAt,
			ID:            item.ID,
			OwnerID:       item.OwnerID,
			ListID:        item.ListID,
		}); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if err := q.TouchList(ctx, db.TouchListParams{
			UpdatedAt: now,
			ID:        listID,
			OwnerID:   ownerID,
		}); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, item, domainevents.ItemChangeUpdated); err != nil {
				return fmt.Errorf("publish item updated: %w", err)
			}
		}

		return r.rereadItem(ctx, q, ownerID, listID, itemID, &persisted)
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

// Delete removes an item scoped by (itemID, ownerID, listID) and touches the
// parent list. Returns ErrItemNotFound when no row matches.
func (r *ItemRepository) Delete(ctx context.Context, ownerID, listID, itemID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		row, err := q.GetItemByID(ctx, db.GetItemByIDParams{ID: itemID, OwnerID: ownerID, ListID: listID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listdomain.ErrItemNotFound
			}
			return fmt.Errorf("query item: %w", err)
		}

		if err := q.DeleteItem(ctx, db.DeleteItemParams{ID: itemID, OwnerID: ownerID, ListID: listID}); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		if err := q.TouchList(ctx, db.TouchListParams{
			UpdatedAt: time.Now().UTC(),
			ID:        listID,
			OwnerID:   ownerID,
		}); err != nil {
			return fmt.Errorf("touch list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishChanged(tx, rowToItem(row), domainevents.ItemChangeDeleted); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
}

// FindByList returns all items of one list scoped to the owner, ordered by
// updated_at descending.
func (r *ItemRepository) FindByList(ctx context.Context, ownerID, listID uuid.UUID) ([]*models.Item, error) {
	q := db.New(r.db.DB())
	rows, err := q.FindItemsByList(ctx, db.FindItemsByListParams{OwnerID: ownerID, ListID: listID})
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// checkParentList verifies the parent list exists under the caller's scope.
func (r *ItemRepository) checkParentList(ctx context.Context, q *db.Queries, ownerID, listID uuid.UUID) error {
	if _, err := q.GetListByID(ctx, db.GetListByIDParams{ID: listID, OwnerID: ownerID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listdomain.ErrListNotFound
		}
		return fmt.Errorf("query parent list: %w", err)
	}
	return nil
}

// rereadItem loads the item back inside the same transaction so callers see
// persisted state, not input echo.
func (r *ItemRepository) rereadItem(ctx context.Context, q *db.Queries, ownerID, listID, itemID uuid.UUID, out **models.Item) error {
	row, err := q.GetItemByID(ctx, db.GetItemByIDParams{ID: itemID, OwnerID: ownerID, ListID: listID})
	if err != nil {
		return fmt.Errorf("reread item: %w", err)
	}
	*out = rowToItem(row)
	return nil
}

func (r *ItemRepository) publishChanged(tx *sql.Tx, item *models.Item, change string) error {
	event := domainevents.ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Change:     change,
		ItemID:     item.ID,
		ListID:     item.ListID,
		OwnerID:    item.OwnerID,
		OccurredAt: time.Now().UTC(),
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
	return p.Publish(domainevents.TopicItemChanged, msg)
}
