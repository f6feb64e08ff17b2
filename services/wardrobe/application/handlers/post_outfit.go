package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// CreateOutfitRequest is the request body for POST /wardrobe/outfits.
// Item references are stored as given; garment existence is not checked.
type CreateOutfitRequest struct {
	Name   string      `json:"name"   validate:"required,min=1,max=255" example:"Friday casual"`
	Season string      `json:"season" validate:"omitempty,season"       example:"all"`
	Items  []uuid.UUID `json:"items"`
} // @name CreateOutfitRequest

// PostOutfitHandler handles POST /wardrobe/outfits requests.
type PostOutfitHandler struct {
	svc *appsvcs.Services
}

func NewPostOutfitHandler(svc *appsvcs.Services) *PostOutfitHandler {
	return &PostOutfitHandler{svc: svc}
}

// Execute creates a new outfit.
//
//	@Summary		Create outfit
//	@Description	Creates a named set of garment references owned by the caller
//	@Tags			outfits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOutfitRequest	true	"Outfit creation request"
//	@Success		201		{object}	OutfitResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/wardrobe/outfits [post]
func (h *PostOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateOutfitRequest](w, r)
	if !ok {
		return
	}

	outfit, err := h.svc.Outfits.Create(r.Context(), userID, appsvcs.CreateOutfitInput{
		Name:   req.Name,
		Season: req.Season,
		Items:  req.Items,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toOutfitResponse(&models.ResolvedOutfit{
		Outfit:   *outfit,
		Garments: []*models.Garment{},
	}))
}
