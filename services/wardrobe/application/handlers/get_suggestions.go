package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
)

// SuggestionsResponse carries the season resolved for the caller's location
// together with the garments wearable in it.
type SuggestionsResponse struct {
	Season   string            `json:"season"   example:"summer"`
	Garments []GarmentResponse `json:"garments"`
} // @name SuggestionsResponse

// GetSuggestionsHandler handles GET /wardrobe/garments/suggestions requests.
type GetSuggestionsHandler struct {
	svc *appsvcs.Services
}

func NewGetSuggestionsHandler(svc *appsvcs.Services) *GetSuggestionsHandler {
	return &GetSuggestionsHandler{svc: svc}
}

// Execute maps the caller's latitude and the current month to a season and
// returns the non-retired garments tagged with that season or "all".
//
//	@Summary		Season suggestions
//	@Description	Suggests garments for the current season at the caller's latitude
//	@Tags			garments
//	@Produce		json
//	@Param			lat	query		number	true	"Latitude in decimal degrees; sign selects the hemisphere"
//	@Success		200	{object}	SuggestionsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/wardrobe/garments/suggestions [get]
func (h *GetSuggestionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	raw := r.URL.Query().Get("lat")
	if raw == "" {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "query parameter lat is required")
		return
	}
	latitude, err := strconv.ParseFloat(raw, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "lat must be a number between -90 and 90")
		return
	}

	season, garments, err := h.svc.Garments.SeasonSuggestions(r.Context(), userID, latitude, time.Now().UTC())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuggestionsResponse{
		Season:   season.String(),
		Garments: toGarmentResponses(garments),
	})
}
