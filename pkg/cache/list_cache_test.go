package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// newTestCache spins up an in-process Redis and returns a ListCache over it.
func newTestCache(t *testing.T) (*ListCache, *RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisClient(newTestConfig("redis://" + mr.Addr()))
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { rc.Close() }) //nolint:errcheck
	return NewListCache(rc), rc
}

func TestListCache(t *testing.T) {
	lc, rc := newTestCache(t)
	ctx := context.Background()

	newCached := func() *CachedList {
		now := time.Now().UTC().Truncate(time.Millisecond)
		store := "Corner Market"
		return &CachedList{
			ID:        uuid.New(),
			OwnerID:   uuid.New(),
			Name:      "Weekly groceries",
			StoreName: &store,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		want := newCached()
		if err := lc.Set(ctx, want); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := lc.Get(ctx, want.OwnerID, want.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != want.ID || got.OwnerID != want.OwnerID {
			t.Fatalf("identity mismatch: got %+v", got)
		}
		if got.Name != want.Name {
			t.Errorf("name: got %q, want %q", got.Name, want.Name)
		}
		if got.StoreName == nil || *got.StoreName != *want.StoreName {
			t.Errorf("store name: got %v, want %q", got.StoreName, *want.StoreName)
		}
		if !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Errorf("updated_at: got %v, want %v", got.UpdatedAt, want.UpdatedAt)
		}
		if got.Notes != nil {
			t.Errorf("expected unset notes to round-trip as nil, got %q", *got.Notes)
		}
	})

	t.Run("RoundTrip_PreservesExplicitEmpty", func(t *testing.T) {
		// A field cleared to "" and a field never set must stay
		// distinguishable across the cache.
		entry := newCached()
		empty := ""
		entry.StoreName = &empty
		entry.Notes = nil
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("set: %v", err)
		}

		got, err := lc.Get(ctx, entry.OwnerID, entry.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.StoreName == nil || *got.StoreName != "" {
			t.Errorf("explicit empty store name collapsed: got %v", got.StoreName)
		}
		if got.Notes != nil {
			t.Errorf("unset notes materialized: got %q", *got.Notes)
		}
	})

	t.Run("Set_DropsStaleOptionalFields", func(t *testing.T) {
		entry := newCached()
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("set: %v", err)
		}
		entry.StoreName = nil
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("re-set: %v", err)
		}

		got, err := lc.Get(ctx, entry.OwnerID, entry.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.StoreName != nil {
			t.Errorf("stale store name survived re-set: got %q", *got.StoreName)
		}
	})

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := lc.Get(ctx, uuid.New(), uuid.New())
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
	})

	t.Run("Delete_RemovesEntry", func(t *testing.T) {
		entry := newCached()
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := lc.Delete(ctx, entry.OwnerID, entry.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := lc.Get(ctx, entry.OwnerID, entry.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("OwnerScoping", func(t *testing.T) {
		entry := newCached()
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("set: %v", err)
		}

		// Another owner asking for the same list id must miss.
		if _, err := lc.Get(ctx, uuid.New(), entry.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil for foreign owner, got %v", err)
		}
	})

	t.Run("Set_HasTTL", func(t *testing.T) {
		entry := newCached()
		if err := lc.Set(ctx, entry); err != nil {
			t.Fatalf("set: %v", err)
		}

		ttl, err := rc.Client().TTL(ctx, lc.key(entry.OwnerID, entry.ID)).Result()
		if err != nil {
			t.Fatalf("ttl: %v", err)
		}
		if ttl <= 0 || ttl > ListCacheTTL {
			t.Fatalf("expected ttl in (0, %v], got %v", ListCacheTTL, ttl)
		}
	})
}
