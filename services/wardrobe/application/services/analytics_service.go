package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

const (
	topWornLimit   = 5
	staleThreshold = 30 * 24 * time.Hour
)

// Analytics is the composite read-only aggregation over a user's non-retired
// garments. Each list is computed independently; there is no cross-query
// transaction.
type Analytics struct {
	CategoryCounts  []repositories.CategoryCount
	MostWorn        []*models.Garment
	LeastWorn       []*models.Garment
	NotWornRecently []*models.Garment
}

// AnalyticsService computes wardrobe usage statistics.
type AnalyticsService struct {
	garments repositories.GarmentRepository
	log      logger.Logger
	now      func() time.Time
}

func NewAnalyticsService(garments repositories.GarmentRepository, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{garments: garments, log: log, now: time.Now}
}

// Compute returns the full analytics view for the user.
//
// Not-worn-recently includes garments never worn at all (NULL last_worn) and
// those last worn 30 or more days ago. Most/least-worn ties are broken by id
// ascending, which keeps repeated calls stable.
func (s *AnalyticsService) Compute(ctx context.Context, userID uuid.UUID) (*Analytics, error) {
	counts, err := s.garments.CountByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	mostWorn, err := s.garments.FindMostWorn(ctx, userID, topWornLimit)
	if err != nil {
		return nil, fmt.Errorf("most worn: %w", err)
	}
	leastWorn, err := s.garments.FindLeastWorn(ctx, userID, topWornLimit)
	if err != nil {
		return nil, fmt.Errorf("least worn: %w", err)
	}
	cutoff := s.now().UTC().Add(-staleThreshold)
	stale, err := s.garments.FindNotWornSince(ctx, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("not worn recently: %w", err)
	}
	return &Analytics{
		CategoryCounts:  counts,
		MostWorn:        mostWorn,
		LeastWorn:       leastWorn,
		NotWornRecently: stale,
	}, nil
}
