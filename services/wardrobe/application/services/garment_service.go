package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/storage"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	domainevents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/wardrobe/domain/services"
)

// ImageUpload carries a pending garment image from the request boundary to
// the image store.
type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// CreateGarmentInput holds validated attributes for a new garment.
// Enumerated fields arrive as strings and are parsed here; empty season and
// condition fall back to their defaults ("all", "new").
type CreateGarmentInput struct {
	Name       string
	Category   string
	Color      string
	Brand      string
	Material   string
	Season     string
	Condition  string
	IsFavorite bool
}

// UpdateGarmentInput holds a partial garment update. Nil fields are left
// untouched.
//
// Supplying both WearCount and LastWorn marks the update as a wear recording:
// LastWorn is appended to the wear history. Either field alone is a plain
// metadata edit. WearCount stays caller-supplied rather than being derived
// from the history length; the two can legitimately diverge.
type UpdateGarmentInput struct {
	Name       *string
	Category   *string
	Color      *string
	Brand      *string
	Material   *string
	Season     *string
	Condition  *string
	IsFavorite *bool
	WearCount  *int
	LastWorn   *time.Time
}

// GarmentService orchestrates garment CRUD, wear recording and the image
// lifecycle. Creation events are published by the repository layer (outbox
// pattern); wear events are published here after the record write.
// Reads are served from the Redis read model when available.
type GarmentService struct {
	repo   repositories.GarmentRepository
	cache  *pkgcache.GarmentCache
	images storage.ImageStore
	bus    *events.EventBus
	log    logger.Logger
}

// NewGarmentService returns a GarmentService wired with the given collaborators.
// cache, images and bus may be nil (tests, worker process); the service
// degrades to Postgres-only behavior.
func NewGarmentService(
	repo repositories.GarmentRepository,
	cache *pkgcache.GarmentCache,
	images storage.ImageStore,
	bus *events.EventBus,
	log logger.Logger,
) *GarmentService {
	return &GarmentService{repo: repo, cache: cache, images: images, bus: bus, log: log}
}

// Create validates and persists a garment. When an image is supplied it is
// uploaded first; an upload failure aborts the write.
func (s *GarmentService) Create(ctx context.Context, userID uuid.UUID, input CreateGarmentInput, image *ImageUpload) (*models.Garment, error) {
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
	}
	season, err := models.ParseSeason(input.Season)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
	}
	condition, err := models.ParseCondition(input.Condition)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
	}

	garment := models.NewGarment(userID, input.Name, category, input.Color)
	garment.Brand = input.Brand
	garment.Material = input.Material
	garment.Season = season
	garment.Condition = condition
	garment.IsFavorite = input.IsFavorite

	if err := domainsvcs.ValidateGarmentForCreation(garment); err != nil {
		return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
	}

	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		garment.Image = key
	}

	if err := s.repo.Save(ctx, garment); err != nil {
		return nil, fmt.Errorf("save garment: %w", err)
	}

	return garment, nil
}

// GetByID retrieves a garment using a read-through cache pattern:
//  1. Check the Redis read model first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *GarmentService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Garment, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, id); err == nil {
			return garmentFromCached(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "garment cache read failed", "garment_id", id, "error", err)
		}
	}

	garment, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get garment: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), garmentToCached(garment))
		}()
	}

	return garment, nil
}

// List returns the user's garments matching filter. Retired garments are
// excluded unless the filter requests a condition explicitly.
func (s *GarmentService) List(ctx context.Context, userID uuid.UUID, filter repositories.GarmentFilter) ([]*models.Garment, error) {
	garments, err := s.repo.FindByUserID(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list garments: %w", err)
	}
	return garments, nil
}

// Update applies a partial edit and/or records a wear event, returning the
// fully updated record. A newly uploaded image replaces the stored reference;
// the old stored image is only released when the garment is deleted.
func (s *GarmentService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateGarmentInput, image *ImageUpload) (*models.Garment, error) {
	garment, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get garment: %w", err)
	}

	if err := applyUpdate(garment, input); err != nil {
		return nil, err
	}

	wearRecorded := input.WearCount != nil && input.LastWorn != nil

	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, err
		}
		garment.Image = key
	}

	if err := s.repo.Update(ctx, garment); err != nil {
		return nil, fmt.Errorf("update garment: %w", err)
	}

	if wearRecorded {
		s.publishWorn(ctx, garment)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, garmentToCached(garment)); err != nil {
			s.log.WarnContext(ctx, "garment cache refresh failed", "garment_id", id, "error", err)
		}
	}

	return garment, nil
}

// Delete removes the garment and best-effort releases its stored image.
// The two writes are independent: a failed release never rolls back the
// record deletion.
func (s *GarmentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	garment, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get garment: %w", err)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete garment: %w", err)
	}

	if garment.Image != "" && s.images != nil {
		if err := s.images.Release(ctx, garment.Image); err != nil {
			s.log.WarnContext(ctx, "image release failed",
				"garment_id", id, "image", garment.Image, "error", err)
		}
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), userID, id)
	}
	return nil
}

// SeasonSuggestions computes the wearing season for the caller's location and
// returns their non-retired garments wearable in it.
func (s *GarmentService) SeasonSuggestions(ctx context.Context, userID uuid.UUID, latitude float64, now time.Time) (models.Season, []*models.Garment, error) {
	season := domainsvcs.SeasonFor(latitude, now.Month())
	garments, err := s.repo.FindBySeason(ctx, userID, season)
	if err != nil {
		return season, nil, fmt.Errorf("season suggestions: %w", err)
	}
	return season, garments, nil
}

func (s *GarmentService) storeImage(ctx context.Context, image *ImageUpload) (string, error) {
	if s.images == nil {
		return "", fmt.Errorf("%w: image store not configured", wardrobedomain.ErrImageStore)
	}
	key, err := s.images.Store(ctx, image.Reader, image.Size, image.ContentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", wardrobedomain.ErrImageStore, err)
	}
	return key, nil
}

func (s *GarmentService) publishWorn(ctx context.Context, g *models.Garment) {
	if s.bus == nil {
		return
	}
	event := domainevents.GarmentWornEvent{
		EventID:   uuid.New(),
		Version:   1,
		GarmentID: g.ID,
		UserID:    g.UserID,
		WearCount: g.WearCount,
		WornAt:    *g.LastWorn,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal garment.worn event", "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicGarmentWorn, msg); err != nil {
		// The wear is already persisted; the event is advisory.
		s.log.WarnContext(ctx, "publish garment.worn failed", "garment_id", g.ID, "error", err)
	}
}

// applyUpdate copies the supplied fields onto the garment, validating
// enumerated values, and appends to the wear history when the update is a
// wear recording.
func applyUpdate(g *models.Garment, input UpdateGarmentInput) error {
	if input.Name != nil {
		if err := domainsvcs.ValidateGarmentName(*input.Name); err != nil {
			return fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
		}
		g.Name = *input.Name
	}
	if input.Category != nil {
		category, err := models.ParseCategory(*input.Category)
		if err != nil {
			return fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
		}
		g.Category = category
	}
	if input.Color != nil {
		if *input.Color == "" {
			return fmt.Errorf("%w: color must not be empty", wardrobedomain.ErrInvalidGarment)
		}
		g.Color = *input.Color
	}
	if input.Brand != nil {
		g.Brand = *input.Brand
	}
	if input.Material != nil {
		g.Material = *input.Material
	}
	if input.Season != nil {
		season, err := models.ParseSeason(*input.Season)
		if err != nil {
			return fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
		}
		g.Season = season
	}
	if input.Condition != nil {
		condition, err := models.ParseCondition(*input.Condition)
		if err != nil {
			return fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidGarment, err)
		}
		g.Condition = condition
	}
	if input.IsFavorite != nil {
		g.IsFavorite = *input.IsFavorite
	}

	if input.WearCount != nil && *input.WearCount < 0 {
		return fmt.Errorf("%w: wear count must not be negative", wardrobedomain.ErrInvalidGarment)
	}

	switch {
	case input.WearCount != nil && input.LastWorn != nil:
		g.RecordWear(*input.WearCount, *input.LastWorn)
	case input.WearCount != nil:
		g.WearCount = *input.WearCount
	case input.LastWorn != nil:
		g.LastWorn = input.LastWorn
	}
	return nil
}

func garmentToCached(g *models.Garment) *pkgcache.CachedGarment {
	return &pkgcache.CachedGarment{
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

func garmentFromCached(c *pkgcache.CachedGarment) *models.Garment {
	return &models.Garment{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Category:    models.Category(c.Category),
		Color:       c.Color,
		Brand:       c.Brand,
		Material:    c.Material,
		Season:      models.Season(c.Season),
		Condition:   models.Condition(c.Condition),
		Image:       c.Image,
		IsFavorite:  c.IsFavorite,
		LastWorn:    c.LastWorn,
		WearCount:   c.WearCount,
		WearHistory: c.WearHistory,
		CreatedAt:   c.CreatedAt,
	}
}
