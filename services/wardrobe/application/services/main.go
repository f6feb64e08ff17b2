package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/services/wardrobe/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the wardrobe
// bounded context. It wires domain services with their infrastructure
// implementations.
type Services struct {
	Garments  *GarmentService
	Outfits   *OutfitService
	Analytics *AnalyticsService
}

// New wires all wardrobe application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	garmentRepo := postgres.NewGarmentRepository(a.Db, a.EventBus)
	outfitRepo := postgres.NewOutfitRepository(a.Db)
	garmentCache := cache.NewGarmentCache(a.Redis)
	return &Services{
		Garments:  NewGarmentService(garmentRepo, garmentCache, a.Images, a.EventBus, a.Logger),
		Outfits:   NewOutfitService(outfitRepo, garmentRepo, a.Logger),
		Analytics: NewAnalyticsService(garmentRepo, a.Logger),
	}
}
