package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/logger"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

// OutfitService manages named garment combinations. Outfits reference
// garments by ID only; resolution to full garment records happens at read
// time, so a deleted garment simply drops out of the resolved view.
type OutfitService struct {
	outfits  repositories.OutfitRepository
	garments repositories.GarmentRepository
	log      logger.Logger
}

func NewOutfitService(outfits repositories.OutfitRepository, garments repositories.GarmentRepository, log logger.Logger) *OutfitService {
	return &OutfitService{outfits: outfits, garments: garments, log: log}
}

// CreateOutfitInput holds validated attributes for a new outfit. An empty
// Season defaults to "all".
type CreateOutfitInput struct {
	Name   string
	Season string
	Items  []uuid.UUID
}

// UpdateOutfitInput holds a partial outfit update. A non-nil Items replaces
// the member list wholesale.
type UpdateOutfitInput struct {
	Name   *string
	Season *string
	Items  *[]uuid.UUID
}

// Create persists a new outfit. Item references are stored as given; they
// are not checked against the garment table, matching the read-time
// resolution model.
func (s *OutfitService) Create(ctx context.Context, userID uuid.UUID, input CreateOutfitInput) (*models.Outfit, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", wardrobedomain.ErrInvalidOutfit)
	}
	season, err := models.ParseSeason(input.Season)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidOutfit, err)
	}
	outfit := models.NewOutfit(userID, input.Name, season, input.Items)
	if err := s.outfits.Save(ctx, outfit); err != nil {
		return nil, fmt.Errorf("save outfit: %w", err)
	}
	return outfit, nil
}

// List returns the user's outfits with garment references resolved.
func (s *OutfitService) List(ctx context.Context, userID uuid.UUID) ([]*models.ResolvedOutfit, error) {
	outfits, err := s.outfits.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	resolved := make([]*models.ResolvedOutfit, 0, len(outfits))
	for _, outfit := range outfits {
		r, err := s.resolve(ctx, outfit)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// GetByID returns one outfit with garment references resolved.
func (s *OutfitService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.ResolvedOutfit, error) {
	outfit, err := s.outfits.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get outfit: %w", err)
	}
	return s.resolve(ctx, outfit)
}

// Update applies a partial edit and returns the updated, resolved outfit.
func (s *OutfitService) Update(ctx context.Context, userID, id uuid.UUID, input UpdateOutfitInput) (*models.ResolvedOutfit, error) {
	outfit, err := s.outfits.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get outfit: %w", err)
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", wardrobedomain.ErrInvalidOutfit)
		}
		outfit.Name = *input.Name
	}
	if input.Season != nil {
		season, err := models.ParseSeason(*input.Season)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", wardrobedomain.ErrInvalidOutfit, err)
		}
		outfit.Season = season
	}
	if input.Items != nil {
		outfit.Items = *input.Items
	}
	if err := s.outfits.Update(ctx, outfit); err != nil {
		return nil, fmt.Errorf("update outfit: %w", err)
	}
	return s.resolve(ctx, outfit)
}

// Delete removes the outfit. Member garments are untouched.
func (s *OutfitService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.outfits.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	return nil
}

// Random picks one of the user's outfits uniformly at random. An empty
// wardrobe of outfits is not an error: it returns (nil, nil) and the caller
// renders an informational response.
func (s *OutfitService) Random(ctx context.Context, userID uuid.UUID) (*models.ResolvedOutfit, error) {
	outfits, err := s.outfits.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	if len(outfits) == 0 {
		return nil, nil
	}
	pick := outfits[rand.IntN(len(outfits))]
	return s.resolve(ctx, pick)
}

// resolve loads the outfit's member garments in one query and re-expands
// them in item order. Duplicated references resolve to the same garment
// twice; references to deleted garments are omitted.
func (s *OutfitService) resolve(ctx context.Context, outfit *models.Outfit) (*models.ResolvedOutfit, error) {
	if len(outfit.Items) == 0 {
		return &models.ResolvedOutfit{Outfit: *outfit, Garments: []*models.Garment{}}, nil
	}
	found, err := s.garments.FindByIDs(ctx, outfit.UserID, outfit.Items)
	if err != nil {
		return nil, fmt.Errorf("resolve outfit %s: %w", outfit.ID, err)
	}
	byID := make(map[uuid.UUID]*models.Garment, len(found))
	for _, g := range found {
		byID[g.ID] = g
	}
	garments := make([]*models.Garment, 0, len(outfit.Items))
	for _, itemID := range outfit.Items {
		if g, ok := byID[itemID]; ok {
			garments = append(garments, g)
		}
	}
	return &models.ResolvedOutfit{Outfit: *outfit, Garments: garments}, nil
}
