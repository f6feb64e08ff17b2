package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

// AnalyticsResponse is the composite wardrobe analytics view.
type AnalyticsResponse struct {
	CategoryCounts  []repositories.CategoryCount `json:"category_counts"`
	MostWorn        []GarmentResponse            `json:"most_worn"`
	LeastWorn       []GarmentResponse            `json:"least_worn"`
	NotWornRecently []GarmentResponse            `json:"not_worn_recently"`
} // @name AnalyticsResponse

// GetAnalyticsHandler handles GET /wardrobe/garments/analytics requests.
type GetAnalyticsHandler struct {
	svc *appsvcs.Services
}

func NewGetAnalyticsHandler(svc *appsvcs.Services) *GetAnalyticsHandler {
	return &GetAnalyticsHandler{svc: svc}
}

// Execute returns counts by category, the five most and least worn garments
// and everything not worn in the last 30 days. Retired garments are
// excluded throughout.
//
//	@Summary		Wardrobe analytics
//	@Description	Aggregated usage statistics over the caller's non-retired garments
//	@Tags			garments
//	@Produce		json
//	@Success		200	{object}	AnalyticsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/wardrobe/garments/analytics [get]
func (h *GetAnalyticsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	analytics, err := h.svc.Analytics.Compute(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	counts := analytics.CategoryCounts
	if counts == nil {
		counts = []repositories.CategoryCount{}
	}
	httpx.JSON(w, http.StatusOK, AnalyticsResponse{
		CategoryCounts:  counts,
		MostWorn:        toGarmentResponses(analytics.MostWorn),
		LeastWorn:       toGarmentResponses(analytics.LeastWorn),
		NotWornRecently: toGarmentResponses(analytics.NotWornRecently),
	})
}
