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

// PutGarmentHandler handles PUT /wardrobe/garments/{id} requests.
type PutGarmentHandler struct {
	svc *appsvcs.Services
}

func NewPutGarmentHandler(svc *appsvcs.Services) *PutGarmentHandler {
	return &PutGarmentHandler{svc: svc}
}

// Execute applies a partial update from a multipart form. Absent fields are
// left unchanged. Supplying both wear_count and last_worn records a wear:
// the timestamp is appended to the wear history.
//
//	@Summary		Update garment
//	@Description	Partially updates a garment; sending wear_count together with last_worn records a wear
//	@Tags			garments
//	@Accept			mpfd
//	@Produce		json
//	@Param			id			path		string	true	"Garment id"
//	@Param			name		formData	string	false	"Garment name"
//	@Param			category	formData	string	false	"Category"
//	@Param			color		formData	string	false	"Color"
//	@Param			brand		formData	string	false	"Brand"
//	@Param			material	formData	string	false	"Material"
//	@Param			season		formData	string	false	"Season"
//	@Param			condition	formData	string	false	"Condition"
//	@Param			is_favorite	formData	boolean	false	"Favorite flag"
//	@Param			wear_count	formData	integer	false	"New wear count"
//	@Param			last_worn	formData	string	false	"Last worn timestamp (RFC 3339)"
//	@Param			image		formData	file	false	"Replacement image"
//	@Success		200	{object}	GarmentResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/wardrobe/garments/{id} [put]
func (h *PutGarmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	file, header, err := parseGarmentForm(r)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	input := appsvcs.UpdateGarmentInput{
		Name:      formString(r, "name"),
		Category:  formString(r, "category"),
		Color:     formString(r, "color"),
		Brand:     formString(r, "brand"),
		Material:  formString(r, "material"),
		Season:    formString(r, "season"),
		Condition: formString(r, "condition"),
	}
	if input.IsFavorite, err = formBool(r, "is_favorite"); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if input.WearCount, err = formInt(r, "wear_count"); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if input.LastWorn, err = formTime(r, "last_worn"); err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	garment, err := h.svc.Garments.Update(r.Context(), userID, id, input, imageUpload(file, header))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toGarmentResponse(garment))
}
