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

// GetGarmentHandler handles GET /wardrobe/garments/{id} requests.
type GetGarmentHandler struct {
	svc *appsvcs.Services
}

func NewGetGarmentHandler(svc *appsvcs.Services) *GetGarmentHandler {
	return &GetGarmentHandler{svc: svc}
}

// Execute returns one garment by id. Retired garments remain retrievable
// by direct lookup.
//
//	@Summary		Get garment
//	@Description	Returns one of the caller's garments by id
//	@Tags			garments
//	@Produce		json
//	@Param			id	path		string	true	"Garment id"
//	@Success		200	{object}	GarmentResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/wardrobe/garments/{id} [get]
func (h *GetGarmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	garment, err := h.svc.Garments.GetByID(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toGarmentResponse(garment))
}
