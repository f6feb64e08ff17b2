package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	wardrobeEvents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/infrastructure/persistence/postgres"
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
	topics := map[string]func(context.Context, *message.Message) error{
		wardrobeEvents.TopicGarmentCreated: handleGarmentEvent(a, "garment.created"),
		wardrobeEvents.TopicGarmentWorn:    handleGarmentEvent(a, "garment.worn"),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		registered = append(registered, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// garmentRef is the subset of the garment event payloads the worker needs;
// created and worn events both carry these fields.
type garmentRef struct {
	GarmentID string `json:"garment_id"`
	UserID    string `json:"user_id"`
}

// handleGarmentEvent returns a cache-warming handler for garment events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// The event payload is only a pointer; the current record is loaded from
// Postgres so the cache never holds a stale projection of a partial payload.
func handleGarmentEvent(a *app.Application, name string) func(context.Context, *message.Message) error {
	repo := postgres.NewGarmentRepository(a.Db, a.EventBus)
	garmentCache := cache.NewGarmentCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var ref garmentRef
		if err := json.Unmarshal(msg.Payload, &ref); err != nil {
			return err
		}
		userID, garmentID, err := parseRef(ref)
		if err != nil {
			// Malformed ids never become valid; drop instead of retrying.
			a.Logger.WarnContext(ctx, "dropping malformed garment event",
				"event", name, "error", err)
			return nil
		}

		garment, err := repo.GetByID(ctx, userID, garmentID)
		if errors.Is(err, wardrobedomain.ErrGarmentNotFound) {
			// Deleted before the event was processed; nothing to warm.
			return nil
		}
		if err != nil {
			return err
		}

		if err := garmentCache.Set(ctx, cachedFromGarment(garment)); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed",
				"event", name, "garment_id", garmentID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"event", name, "garment_id", garmentID, "user_id", userID)
		}

		return nil
	}
}

func parseRef(ref garmentRef) (userID, garmentID uuid.UUID, err error) {
	userID, err = uuid.Parse(ref.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	garmentID, err = uuid.Parse(ref.GarmentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, garmentID, nil
}

func cachedFromGarment(g *models.Garment) *cache.CachedGarment {
	return &cache.CachedGarment{
		ID:          g.ID,
		UserID:      g.UserID,
		Name:        g.Name,
		Category:    g.Category.String(),
		Color:       g.Color,
		Brand:       g.Brand,
		Material:    g.Material,
		Season:      g.Season.String(),
		Condition:   g.Condition.String(),
		Image:       g.Image,
		IsFavorite:  g.IsFavorite,
		LastWorn:    g.LastWorn,
		WearCount:   g.WearCount,
		WearHistory: g.WearHistory,
		CreatedAt:   g.CreatedAt,
	}
}
