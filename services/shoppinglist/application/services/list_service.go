package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/cartloom/pkg/cache"
	listdomain "github.com/ghuser/cartloom/services/shoppinglist/domain"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/models"
	"github.com/ghuser/cartloom/services/shoppinglist/domain/repositories"
	domainsvcs "github.com/ghuser/cartloom/services/shoppinglist/domain/services"
)

// ListService orchestrates creation, mutation, and retrieval of shopping
// lists. Event publishing is handled by the repository layer (outbox
// pattern). Single-list reads are served from the Redis cache when available.
type ListService struct {
	repo  repositories.ListRepository
	items repositories.ItemRepository
	cache *pkgcache.ListCache
	log   *slog.Logger
}

// NewListService returns a ListService wired with the given repositories and cache.
func NewListService(repo repositories.ListRepository, items repositories.ItemRepository, listCache *pkgcache.ListCache, log *slog.Logger) *ListService {
	if log == nil {
		log = slog.Default()
	}
	return &ListService{repo: repo, items: items, cache: listCache, log: log}
}

// UpdateListInput carries the sparse fields of an update request.
// Nil means "leave unchanged".
type UpdateListInput struct {
	Name       *string
	StoreName  *string
	Notes      *string
	IsArchived *bool
}

// Create validates and persists a new List owned by ownerID.
// The repository publishes ListCreatedEvent.
func (s *ListService) Create(ctx context.Context, ownerID uuid.UUID, name string, storeName, notes *string) (*models.List, error) {
	listName, err := validName(name)
	if err != nil {
		return nil, err
	}

	list, err := models.NewList(ownerID, listName, storeName, notes)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}

	if err := s.repo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("save list: %w", err)
	}

	return list, nil
}

// Update applies a sparse update to a list scoped to ownerID and returns the
// merged record. Fields left nil in the input are untouched; updatedAt always
// advances. Returns ErrListNotFound when the list is absent or owned by
// someone else.
func (s *ListService) Update(ctx context.Context, ownerID, listID uuid.UUID, in UpdateListInput) (*models.List, error) {
	patch := models.ListPatch{
		StoreName:  in.StoreName,
		Notes:      in.Notes,
		IsArchived: in.IsArchived,
	}
	if in.Name != nil {
		name, err := validName(*in.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}

	list, err := s.repo.Update(ctx, ownerID, listID, patch)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}

	s.invalidate(ownerID, listID)
	return list, nil
}

// List returns one page of the owner's lists (most recently touched first)
// plus the total count over the full filtered set.
func (s *ListService) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int, includeArchived bool) ([]*models.List, int, error) {
	lists, total, err := s.repo.FindByOwner(ctx, ownerID, repositories.ListQueryOpts{
		Limit:           pageSize,
		Offset:          (page - 1) * pageSize,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list lists: %w", err)
	}
	return lists, total, nil
}

// GetWithItems retrieves a list scoped to ownerID together with all of its
// items ordered by item updatedAt descending.
//
// The list row uses a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ListService) GetWithItems(ctx context.Context, ownerID, listID uuid.UUID) (*models.List, []*models.Item, error) {
	list, err := s.getList(ctx, ownerID, listID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.items.FindByList(ctx, ownerID, listID)
	if err != nil {
		return nil, nil, fmt.Errorf("list items: %w", err)
	}

	return list, items, nil
}

func (s *ListService) getList(ctx context.Context, ownerID, listID uuid.UUID) (*models.List, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ownerID, listID); err == nil {
			return cachedToList(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Best-effort read model; fall through to Postgres.
			s.log.WarnContext(ctx, "list cache read failed",
				"list_id", listID, "error", err)
		}
	}

	list, err := s.repo.GetByID(ctx, ownerID, listID)
	if err != nil {
		if errors.Is(err, listdomain.ErrListNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get list: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), listToCached(list))
		}()
	}

	return list, nil
}

// invalidate drops the cached list row best-effort after a mutation.
func (s *ListService) invalidate(ownerID, listID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), ownerID, listID); err != nil {
		s.log.Warn("list cache invalidation failed", "list_id", listID, "error", err)
	}
}

// validName lifts a raw string into a domain Name, running both structural
// and business-rule validation. Failures wrap ErrInvalidName.
func validName(s string) (models.Name, error) {
	name, err := models.NewName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", listdomain.ErrInvalidName, err)
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %w", listdomain.ErrInvalidName, err)
	}
	return name, nil
}

func cachedToList(c *pkgcache.CachedList) *models.List {
	return &models.List{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       models.Name(c.Name),
		StoreName:  c.StoreName,
		Notes:      c.Notes,
		IsArchived: c.IsArchived,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func listToCached(l *models.List) *pkgcache.CachedList {
	return &pkgcache.CachedList{
		ID:         l.ID,
		OwnerID:    l.OwnerID,
		Name:       l.Name.String(),
		StoreName:  l.StoreName,
		Notes:      l.Notes,
		IsArchived: l.IsArchived,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
