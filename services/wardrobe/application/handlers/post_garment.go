package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// PostGarmentHandler handles POST /wardrobe/garments requests.
type PostGarmentHandler struct {
	svc *appsvcs.Services
}

// NewPostGarmentHandler returns a PostGarmentHandler backed by the given services.
func NewPostGarmentHandler(svc *appsvcs.Services) *PostGarmentHandler {
	return &PostGarmentHandler{svc: svc}
}

// Execute creates a new garment from a multipart form with an optional
// image part.
//
//	@Summary		Add garment
//	@Description	Creates a garment owned by the caller; multipart form with an optional image file
//	@Tags			garments
//	@Accept			mpfd
//	@Produce		json
//	@Param			name		formData	string	true	"Garment name"
//	@Param			category	formData	string	true	"Category (shirt, pants, shoes, jacket, accessory, watch, other)"
//	@Param			color		formData	string	true	"Color"
//	@Param			brand		formData	string	false	"Brand"
//	@Param			material	formData	string	false	"Material"
//	@Param			season		formData	string	false	"Season (spring, summer, fall, winter, all)"
//	@Param			condition	formData	string	false	"Condition (new, good, torn, donated, sold, archived)"
//	@Param			is_favorite	formData	boolean	false	"Favorite flag"
//	@Param			image		formData	file	false	"Garment image"
//	@Success		201	{object}	GarmentResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/wardrobe/garments [post]
func (h *PostGarmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
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

	favorite, err := formBool(r, "is_favorite")
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	input := appsvcs.CreateGarmentInput{
		Name:      deref(formString(r, "name")),
		Category:  deref(formString(r, "category")),
		Color:     deref(formString(r, "color")),
		Brand:     deref(formString(r, "brand")),
		Material:  deref(formString(r, "material")),
		Season:    deref(formString(r, "season")),
		Condition: deref(formString(r, "condition")),
	}
	if favorite != nil {
		input.IsFavorite = *favorite
	}

	garment, err := h.svc.Garments.Create(r.Context(), userID, input, imageUpload(file, header))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toGarmentResponse(garment))
}
