package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// GetOutfitHandler handles GET /wardrobe/outfits/{id} requests.
type GetOutfitHandler struct {
	svc *appsvcs.Services
}

func NewGetOutfitHandler(svc *appsvcs.Services) *GetOutfitHandler {
	return &GetOutfitHandler{svc: svc}
}

// Execute returns one outfit with its garment references resolved.
//
//	@Summary		Get outfit
//	@Description	Returns one of the caller's outfits by id with member garments expanded
//	@Tags			outfits
//	@Produce		json
//	@Param			id	path		string	true	"Outfit id"
//	@Success		200	{object}	OutfitResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/wardrobe/outfits/{id} [get]
func (h *GetOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "outfit not found")
		return
	}

	outfit, err := h.svc.Outfits.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOutfitResponse(outfit))
}
