package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListCacheTTL is the time-to-live for cached list rows.
	ListCacheTTL = 24 * time.Hour

	listCacheKeyPrefix = "list"
)

// CachedList is the denormalized list read model stored in Redis.
// Fields are stored as a Redis hash. Optional text fields are pointers:
// nil fields are omitted from the hash entirely, so an explicitly-set
// empty string stays distinguishable from "never set" across the
// round-trip — a cache hit must serve the same shape as a Postgres read.
type CachedList struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	StoreName  *string   `json:"store_name"`
	Notes      *string   `json:"notes"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListCache provides structured read/write operations for list cache entries.
// Keys are scoped by ownerID to prevent cross-tenant data leakage.
// Key format: "list:{ownerID}:{listID}"
type ListCache struct {
	client *RedisClient
}

// NewListCache creates a new ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient) *ListCache {
	return &ListCache{client: r}
}

// Get retrieves a cached list by owner + list ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListCache) Get(ctx context.Context, ownerID, listID uuid.UUID) (*CachedList, error) {
	key := c.key(ownerID, listID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	isArchived, err := strconv.ParseBool(vals["is_archived"])
	if err != nil {
		return nil, fmt.Errorf("cache parse is_archived: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}

	cached := &CachedList{
		ID:         id,
		OwnerID:    oid,
		Name:       vals["name"],
		IsArchived: isArchived,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	// HGetAll only returns fields that exist, so a missing key means the
	// field was nil when written.
	if v, ok := vals["store_name"]; ok {
		cached.StoreName = &v
	}
	if v, ok := vals["notes"]; ok {
		cached.Notes = &v
	}
	return cached, nil
}

// Set writes a cached list as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListCache) Set(ctx context.Context, list *CachedList) error {
	key := c.key(list.OwnerID, list.ID)
	fields := []any{
		"id", list.ID.String(),
		"owner_id", list.OwnerID.String(),
		"name", list.Name,
		"is_archived", strconv.FormatBool(list.IsArchived),
		"created_at", list.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", list.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if list.StoreName != nil {
		fields = append(fields, "store_name", *list.StoreName)
	}
	if list.Notes != nil {
		fields = append(fields, "notes", *list.Notes)
	}
	pipe := c.client.Client().Pipeline()
	// Del before HSet: the previous entry may carry optional fields the
	// new one omits, and HSet never removes fields.
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields...)
	pipe.Expire(ctx, key, ListCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached list. Called on every list mutation and on every
// item write, since the cascading touch changes the list's updated_at.
func (c *ListCache) Delete(ctx context.Context, ownerID, listID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(ownerID, listID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "list:{ownerID}:{listID}"
func (c *ListCache) key(ownerID, listID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", listCacheKeyPrefix, ownerID, listID)
}
