package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// GetOutfitsHandler handles GET /wardrobe/outfits requests.
type GetOutfitsHandler struct {
	svc *appsvcs.Services
}

func NewGetOutfitsHandler(svc *appsvcs.Services) *GetOutfitsHandler {
	return &GetOutfitsHandler{svc: svc}
}

// Execute lists the caller's outfits with garment references resolved.
//
//	@Summary		List outfits
//	@Description	Lists the caller's outfits with member garments expanded
//	@Tags			outfits
//	@Produce		json
//	@Success		200	{array}		OutfitResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/wardrobe/outfits [get]
func (h *GetOutfitsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	outfits, err := h.svc.Outfits.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]OutfitResponse, 0, len(outfits))
	for _, o := range outfits {
		out = append(out, toOutfitResponse(o))
	}
	httpx.JSON(w, http.StatusOK, out)
}
