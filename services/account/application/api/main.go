package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/account/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/account/application/services"
)

// AccountRoutes registers auth endpoints on the provided chi router.
// These routes are unauthenticated by design: they are the way in.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewPostRegisterHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/login", handlers.NewPostLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/logout", handlers.NewPostLogoutHandler(a.SessionStore, a.Logger).Execute)
	})
}
