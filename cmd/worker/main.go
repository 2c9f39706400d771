package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/cartloom/pkg/app"
	"github.com/ghuser/cartloom/pkg/cache"
	"github.com/ghuser/cartloom/pkg/config"
	"github.com/ghuser/cartloom/pkg/database"
	"github.com/ghuser/cartloom/pkg/events"
	"github.com/ghuser/cartloom/pkg/logger"
	"github.com/ghuser/cartloom/pkg/telemetry"
	listEvents "github.com/ghuser/cartloom/services/shoppinglist/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	listCache := cache.NewListCache(a.Redis)

	topics := map[string]func(context.Context, *message.Message) error{
		listEvents.TopicListCreated: handleListCreated(a, listCache),
		listEvents.TopicItemChanged: handleItemChanged(a, listCache),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic, errCh)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleListCreated returns a handler for shopping_list.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis list read model so the first fetch hits cache; the event
// carries the full row, so the warmed entry matches a Postgres read.
func handleListCreated(a *app.Application, listCache *cache.ListCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ListCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listCache.Set(ctx, &cache.CachedList{
			ID:         evt.ListID,
			OwnerID:    evt.OwnerID,
			Name:       evt.Name,
			StoreName:  evt.StoreName,
			Notes:      evt.Notes,
			IsArchived: evt.IsArchived,
			CreatedAt:  evt.OccurredAt,
			UpdatedAt:  evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for shopping_list.created",
				"list_id", evt.ListID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "list cache warmed",
				"list_id", evt.ListID, "owner_id", evt.OwnerID)
		}

		return nil
	}
}

// handleItemChanged returns a handler for shopping_list.item_changed events.
// Every item write touches the parent list's updated_at, so any cached copy
// of the list is stale and must be dropped.
func handleItemChanged(a *app.Application, listCache *cache.ListCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listCache.Delete(ctx, evt.OwnerID, evt.ListID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for shopping_list.item_changed",
				"list_id", evt.ListID, "item_id", evt.ItemID, "change", evt.Change, "error", err)
			return err
		}

		a.Logger.InfoContext(ctx, "list cache invalidated",
			"list_id", evt.ListID, "item_id", evt.ItemID, "change", evt.Change)
		return nil
	}
}
