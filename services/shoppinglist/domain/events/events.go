package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the shopping list repositories.
const (
	TopicListCreated = "shopping_list.created"
	TopicItemChanged = "shopping_list.item_changed"
)

// ListCreatedEvent is published after a new List is persisted. It carries
// the full list row so the worker can warm the Redis list read model
// without a follow-up query; a partial payload would serve incomplete
// rows for the cache TTL.
type ListCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ListID     uuid.UUID `json:"list_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	StoreName  *string   `json:"store_name"` // nil when unset; pointer keeps "" distinct from absent
	Notes      *string   `json:"notes"`
	IsArchived bool      `json:"is_archived"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Item change kinds carried by ItemChangedEvent.
const (
	ItemChangeCreated = "created"
	ItemChangeUpdated = "updated"
	ItemChangeDeleted = "deleted"
)

// ItemChangedEvent is published after any item write (create, sparse update,
// delete). Every item write also touches the parent list's updated_at, so
// consumers holding a cached copy of the list must drop it.
type ItemChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Change     string    `json:"change"` // created | updated | deleted
	ItemID     uuid.UUID `json:"item_id"`
	ListID     uuid.UUID `json:"list_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
