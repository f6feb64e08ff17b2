package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	appsvcs "github.com/ghuser/wardrobe/services/wardrobe/application/services"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

// GetGarmentsHandler handles GET /wardrobe/garments requests.
type GetGarmentsHandler struct {
	svc *appsvcs.Services
}

func NewGetGarmentsHandler(svc *appsvcs.Services) *GetGarmentsHandler {
	return &GetGarmentsHandler{svc: svc}
}

// Execute lists the caller's garments. Retired garments (donated, sold,
// archived) are excluded unless the condition filter asks for one.
//
//	@Summary		List garments
//	@Description	Lists the caller's garments with optional equality filters
//	@Tags			garments
//	@Produce		json
//	@Param			category	query	string	false	"Filter by category"
//	@Param			color		query	string	false	"Filter by color"
//	@Param			season		query	string	false	"Filter by season"
//	@Param			condition	query	string	false	"Filter by condition (includes retired conditions)"
//	@Param			favorite	query	boolean	false	"Filter by favorite flag"
//	@Success		200	{array}		GarmentResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/wardrobe/garments [get]
func (h *GetGarmentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	garments, err := h.svc.Garments.List(r.Context(), userID, filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toGarmentResponses(garments))
}

func filterFromQuery(r *http.Request) (repositories.GarmentFilter, error) {
	var filter repositories.GarmentFilter
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		category, err := models.ParseCategory(raw)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
	}
	if raw := q.Get("color"); raw != "" {
		filter.Color = &raw
	}
	if raw := q.Get("season"); raw != "" {
		season, err := models.ParseSeason(raw)
		if err != nil {
			return filter, err
		}
		filter.Season = &season
	}
	if raw := q.Get("condition"); raw != "" {
		condition, err := models.ParseCondition(raw)
		if err != nil {
			return filter, err
		}
		filter.Condition = &condition
	}
	if raw := q.Get("favorite"); raw != "" {
		favorite := raw == "true" || raw == "1"
		filter.IsFavorite = &favorite
	}
	return filter, nil
}
