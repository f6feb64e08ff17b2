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

// DeleteGarmentHandler handles DELETE /wardrobe/garments/{id} requests.
type DeleteGarmentHandler struct {
	svc *appsvcs.Services
}

func NewDeleteGarmentHandler(svc *appsvcs.Services) *DeleteGarmentHandler {
	return &DeleteGarmentHandler{svc: svc}
}

// Execute deletes a garment and releases its stored image.
//
//	@Summary		Delete garment
//	@Description	Deletes one of the caller's garments and its stored image
//	@Tags			garments
//	@Produce		json
//	@Param			id	path	string	true	"Garment id"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/wardrobe/garments/{id} [delete]
func (h *DeleteGarmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "garment not found")
		return
	}

	if err := h.svc.Garments.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
