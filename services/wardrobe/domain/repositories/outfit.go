package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// OutfitRepository is the persistence interface for the Outfit aggregate.
// Item references are stored as opaque ids: no existence check on write,
// no cascade when a referenced garment is deleted.
type OutfitRepository interface {
	Save(ctx context.Context, outfit *models.Outfit) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Outfit, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Outfit, error)

	// Update persists the full outfit record (last-write-wins).
	Update(ctx context.Context, outfit *models.Outfit) error

	// Delete removes an outfit by ID scoped to the user.
	// Returns domain.ErrOutfitNotFound when no row matches.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
