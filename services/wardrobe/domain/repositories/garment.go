package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// GarmentFilter holds the optional equality filters for list queries.
// Nil fields are not applied. When Condition is nil the query excludes
// retired conditions (donated, sold, archived); an explicit Condition
// filter overrides that exclusion.
type GarmentFilter struct {
	Category   *models.Category
	Color      *string
	Season     *models.Season
	Condition  *models.Condition
	IsFavorite *bool
}

// CategoryCount is one analytics bucket: how many non-retired garments a
// user owns in a category.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

// GarmentRepository is the persistence interface for the Garment aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method is scoped by userID; implementations must never return or
// mutate a record owned by a different user.
type GarmentRepository interface {
	Save(ctx context.Context, garment *models.Garment) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Garment, error)

	// FindByUserID retrieves the user's garments matching filter.
	// Each call issues a fresh query; no cursor state is kept.
	FindByUserID(ctx context.Context, userID uuid.UUID, filter GarmentFilter) ([]*models.Garment, error)

	// FindByIDs loads the given garments, omitting ids that do not resolve
	// for this user. Used for outfit item resolution.
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Garment, error)

	// FindBySeason retrieves non-retired garments whose season is the given
	// one or "all".
	FindBySeason(ctx context.Context, userID uuid.UUID, season models.Season) ([]*models.Garment, error)

	// Update persists the full garment record (last-write-wins; no version check).
	Update(ctx context.Context, garment *models.Garment) error

	// Delete removes a garment by ID scoped to the user.
	// Returns domain.ErrGarmentNotFound when no row matches.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CountByCategory groups the user's non-retired garments by category.
	CountByCategory(ctx context.Context, userID uuid.UUID) ([]CategoryCount, error)

	// FindMostWorn returns up to limit non-retired garments ordered by
	// wear count descending, ties broken by id ascending.
	FindMostWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error)

	// FindLeastWorn is FindMostWorn with ascending wear count.
	FindLeastWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error)

	// FindNotWornSince returns non-retired garments never worn or last worn
	// at or before cutoff.
	FindNotWornSince(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*models.Garment, error)
}
