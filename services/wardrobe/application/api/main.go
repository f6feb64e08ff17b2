package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/wardrobe/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// WardrobeRoutes registers garment and outfit endpoints on the provided chi
// router. The literal subroutes (analytics, suggestions, random) are
// registered before the {id} routes so they are not captured as ids.
func WardrobeRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/wardrobe", func(r chi.Router) {
		r.Route("/garments", func(r chi.Router) {
			r.Post("/", handlers.NewPostGarmentHandler(svcs).Execute)
			r.Get("/", handlers.NewGetGarmentsHandler(svcs).Execute)
			r.Get("/analytics", handlers.NewGetAnalyticsHandler(svcs).Execute)
			r.Get("/suggestions", handlers.NewGetSuggestionsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetGarmentHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutGarmentHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteGarmentHandler(svcs).Execute)
		})
		r.Route("/outfits", func(r chi.Router) {
			r.Post("/", handlers.NewPostOutfitHandler(svcs).Execute)
			r.Get("/", handlers.NewGetOutfitsHandler(svcs).Execute)
			r.Get("/random", handlers.NewGetRandomOutfitHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetOutfitHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutOutfitHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteOutfitHandler(svcs).Execute)
		})
	})
}
