package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// RandomOutfitResponse wraps the randomly selected outfit. When the caller
// has no outfits, Outfit is null and Message says so; this is a successful
// response, not an error.
type RandomOutfitResponse struct {
	Outfit  *OutfitResponse `json:"outfit"`
	Message string          `json:"message,omitempty" example:"no outfits yet"`
} // @name RandomOutfitResponse

// GetRandomOutfitHandler handles GET /wardrobe/outfits/random requests.
type GetRandomOutfitHandler struct {
	svc *appsvcs.Services
}

func NewGetRandomOutfitHandler(svc *appsvcs.Services) *GetRandomOutfitHandler {
	return &GetRandomOutfitHandler{svc: svc}
}

// Execute picks one of the caller's outfits uniformly at random.
//
//	@Summary		Random outfit
//	@Description	Picks one of the caller's outfits at random; an empty outfit set yields a message, not an error
//	@Tags			outfits
//	@Produce		json
//	@Success		200	{object}	RandomOutfitResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/wardrobe/outfits/random [get]
func (h *GetRandomOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	outfit, err := h.svc.Outfits.Random(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if outfit == nil {
		httpx.JSON(w, http.StatusOK, RandomOutfitResponse{Message: "no outfits yet"})
		return
	}

	resolved := toOutfitResponse(outfit)
	httpx.JSON(w, http.StatusOK, RandomOutfitResponse{Outfit: &resolved})
}
