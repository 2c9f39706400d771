package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/cartloom/pkg/cache"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/repositories"
)

// ItemService orchestrates the upsert/delete surface for list items. The
// repository handles the transaction, the cascading touch of the parent
// list, and event publishing; this layer handles validation and cache
// invalidation.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ListCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, listCache *pkgcache.ListCache) *ItemService {
	return &ItemService{repo: repo, cache: listCache}
}

// UpsertItemInput carries the fields of an upsert request. ID nil means
// create; for updates every other nil field is left unchanged.
type UpsertItemInput struct {
	ID            *uuid.UUID
	Name          *string
	Quantity      *float64
	Unit          *string
	Category      *string
	Notes         *string
	IsChecked     *bool
	IsAISuggested *bool
	AIContext     *string
}

// Upsert creates the item when in.ID is nil and sparse-updates it otherwise.
// Both paths verify the parent list is owned by ownerID (ErrListNotFound),
// refresh the parent list's updatedAt, and return the item re-read after the
// write.
func (s *ItemService) Upsert(ctx context.Context, ownerID, listID uuid.UUID, in UpsertItemInput) (*models.Item, error) {
	if in.Quantity != nil {
		if err := models.ValidateQuantity(*in.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", listdomain.ErrInvalidQuantity, err)
		}
	}

	if in.ID == nil {
		return s.create(ctx, ownerID, listID, in)
	}
	return s.update(ctx, ownerID, listID, *in.ID, in)
}

// Delete removes an item scoped by (itemID, ownerID, listID), touches the
// parent list, and returns the deleted id as confirmation. Returns
// ErrItemNotFound when no row matches, never a silent success.
func (s *ItemService) Delete(ctx context.Context, ownerID, listID, itemID uuid.UUID) (uuid.UUID, error) {
	if err := s.repo.Delete(ctx, ownerID, listID, itemID); err != nil {
		return uuid.Nil, fmt.Errorf("delete item: %w", err)
	}
	s.invalidate(ownerID, listID)
	return itemID, nil
}

func (s *ItemService) create(ctx context.Context, ownerID, listID uuid.UUID, in UpsertItemInput) (*models.Item, error) {
	if in.Name == nil {
		return nil, fmt.Errorf("%w: name is required when creating an item", listdomain.ErrInvalidName)
	}
	name, err := validName(*in.Name)
	if err != nil {
		return nil, err
	}

	item, err := models.NewItem(ownerID, listID, name)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	item.Quantity = in.Quantity
	item.Unit = in.Unit
	item.Category = in.Category
	item.Notes = in.Notes
	item.AIContext = in.AIContext
	if in.IsChecked != nil {
		item.IsChecked = *in.IsChecked
	}
	if in.IsAISuggested != nil {
		item.IsAISuggested = *in.IsAISuggested
	}

	persisted, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.invalidate(ownerID, listID)
	return persisted, nil
}

func (s *ItemService) update(ctx context.Context, ownerID, listID, itemID uuid.UUID, in UpsertItemInput) (*models.Item, error) {
	patch := models.ItemPatch{
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Category:      in.Category,
		Notes:         in.Notes,
		IsChecked:     in.IsChecked,
		IsAISuggested: in.IsAISuggested,
		AIContext:     in.AIContext,
	}
	if in.Name != nil {
		name, err := validName(*in.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}

	persisted, err := s.repo.UpdateSparse(ctx, ownerID, listID, itemID, patch)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(ownerID, listID)
	return persisted, nil
}

// invalidate drops the cached parent list row: the cascading touch changed
// its updatedAt, so any cached copy is stale.
func (s *ItemService) invalidate(ownerID, listID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), ownerID, listID)
}
