package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// UpdateOutfitRequest is the request body for PUT /wardrobe/outfits/{id}.
// Absent fields are left unchanged; a present items list replaces the
// member set wholesale.
type UpdateOutfitRequest struct {
	Name   *string      `json:"name"   validate:"omitempty,min=1,max=255" example:"Friday casual"`
	Season *string      `json:"season" validate:"omitempty,season"        example:"fall"`
	Items  *[]uuid.UUID `json:"items"`
} // @name UpdateOutfitRequest

// PutOutfitHandler handles PUT /wardrobe/outfits/{id} requests.
type PutOutfitHandler struct {
	svc *appsvcs.Services
}

func NewPutOutfitHandler(svc *appsvcs.Services) *PutOutfitHandler {
	return &PutOutfitHandler{svc: svc}
}

// Execute applies a partial update to an outfit.
//
//	@Summary		Update outfit
//	@Description	Partially updates one of the caller's outfits
//	@Tags			outfits
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Outfit id"
//	@Param			request	body		UpdateOutfitRequest	true	"Outfit update request"
//	@Success		200		{object}	OutfitResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/wardrobe/outfits/{id} [put]
func (h *PutOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[UpdateOutfitRequest](w, r)
	if !ok {
		return
	}

	outfit, err := h.svc.Outfits.Update(r.Context(), userID, id, appsvcs.UpdateOutfitInput{
		Name:   req.Name,
		Season: req.Season,
		Items:  req.Items,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toOutfitResponse(outfit))
}
