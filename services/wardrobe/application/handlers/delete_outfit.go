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

// DeleteOutfitHandler handles DELETE /wardrobe/outfits/{id} requests.
type DeleteOutfitHandler struct {
	svc *appsvcs.Services
}

func NewDeleteOutfitHandler(svc *appsvcs.Services) *DeleteOutfitHandler {
	return &DeleteOutfitHandler{svc: svc}
}

// Execute deletes an outfit. Member garments are untouched.
//
//	@Summary		Delete outfit
//	@Description	Deletes one of the caller's outfits
//	@Tags			outfits
//	@Produce		json
//	@Param			id	path	string	true	"Outfit id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/wardrobe/outfits/{id} [delete]
func (h *DeleteOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Outfits.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
