package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/repositories"
)

// In-memory repository fakes mirroring the documented Postgres semantics:
// owner scoping on every read, updated_at ordering, and the cascading touch
// of the parent list on every item write.

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[uuid.UUID]*models.List
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{lists: make(map[uuid.UUID]*models.List)}
}

func copyList(l *models.List) *models.List {
	cp := *l
	return &cp
}

func (r *fakeListRepo) Create(_ context.Context, list *models.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[list.ID] = copyList(list)
	return nil
}

func (r *fakeListRepo) GetByID(_ context.Context, ownerID, listID uuid.UUID) (*models.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[listID]
	if !ok || l.OwnerID != ownerID {
		return nil, listdomain.ErrListNotFound
	}
	return copyList(l), nil
}

func (r *fakeListRepo) FindByOwner(_ context.Context, ownerID uuid.UUID, opts repositories.ListQueryOpts) ([]*models.List, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []*models.List
	for _, l := range r.lists {
		if l.OwnerID != ownerID {
			continue
		}
		if l.IsArchived && !opts.IncludeArchived {
			continue
		}
		filtered = append(filtered, copyList(l))
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	total := len(filtered)
	if opts.Offset >= total {
		return nil, total, nil
	}
	end := opts.Offset + opts.Limit
	if end > total {
		end = total
	}
	return filtered[opts.Offset:end], total, nil
}

func (r *fakeListRepo) Update(_ context.Context, ownerID, listID uuid.UUID, patch models.ListPatch) (*models.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[listID]
	if !ok || l.OwnerID != ownerID {
		return nil, listdomain.ErrListNotFound
	}
	l.Apply(patch, time.Now().UTC())
	return copyList(l), nil
}

// touch is the cascading-touch primitive the item fake calls on every write.
func (r *fakeListRepo) touch(listID uuid.UUID, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.lists[listID]; ok {
		l.UpdatedAt = now
	}
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Item
	lists *fakeListRepo
}

func newFakeItemRepo(lists *fakeListRepo) *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*models.Item), lists: lists}
}

func copyItem(i *models.Item) *models.Item {
	cp := *i
	return &cp
}

func (r *fakeItemRepo) checkParent(ownerID, listID uuid.UUID) error {
	_, err := r.lists.GetByID(context.Background(), ownerID, listID)
	return err
}

func (r *fakeItemRepo) Insert(_ context.Context, item *models.Item) (*models.Item, error) {
	if err := r.checkParent(item.OwnerID, item.ListID); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.items[item.ID] = copyItem(item)
	r.mu.Unlock()
	r.lists.touch(item.ListID, item.UpdatedAt)
	return copyItem(item), nil
}

func (r *fakeItemRepo) UpdateSparse(_ context.Context, ownerID, listID, itemID uuid.UUID, patch models.ItemPatch) (*models.Item, error) {
	if err := r.checkParent(ownerID, listID); err != nil {
		return nil, err
	}
	r.mu.Lock()
	it, ok := r.items[itemID]
	if !ok || it.OwnerID != ownerID || it.ListID != listID {
		r.mu.Unlock()
		return nil, listdomain.ErrItemNotFound
	}
	now := time.Now().UTC()
	it.Apply(patch, now)
	cp := copyItem(it)
	r.mu.Unlock()
	r.lists.touch(listID, now)
	return cp, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, ownerID, listID, itemID uuid.UUID) error {
	r.mu.Lock()
	it, ok := r.items[itemID]
	if !ok || it.OwnerID != ownerID || it.ListID != listID {
		r.mu.Unlock()
		return listdomain.ErrItemNotFound
	}
	delete(r.items, itemID)
	r.mu.Unlock()
	r.lists.touch(listID, time.Now().UTC())
	return nil
}

func (r *fakeItemRepo) FindByList(_ context.Context, ownerID, listID uuid.UUID) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID && it.ListID == listID {
			out = append(out, copyItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// newTestServices wires both services over shared fakes with no cache.
func newTestServices() (*ListService, *ItemService, *fakeListRepo, *fakeItemRepo) {
	listRepo := newFakeListRepo()
	itemRepo := newFakeItemRepo(listRepo)
	return NewListService(listRepo, itemRepo, nil, discardLogger()), NewItemService(itemRepo, nil), listRepo, itemRepo
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64  { return &f }
func boolPtr(b bool) *bool         { return &b }
func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }
