package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// GarmentResponse is the wire representation of a garment.
type GarmentResponse struct {
	ID          uuid.UUID   `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string      `json:"name"         example:"Blue Oxford Shirt"`
	Category    string      `json:"category"     example:"shirt"`
	Color       string      `json:"color"        example:"blue"`
	Brand       string      `json:"brand,omitempty"    example:"Uniqlo"`
	Material    string      `json:"material,omitempty" example:"cotton"`
	Season      string      `json:"season"       example:"all"`
	Condition   string      `json:"condition"    example:"good"`
	Image       string      `json:"image,omitempty"`
	IsFavorite  bool        `json:"is_favorite"  example:"false"`
	LastWorn    *time.Time  `json:"last_worn"`
	WearCount   int         `json:"wear_count"   example:"3"`
	WearHistory []time.Time `json:"wear_history"`
	CreatedAt   time.Time   `json:"created_at"   example:"2024-01-15T10:30:00Z"`
} // @name GarmentResponse

// OutfitResponse is the wire representation of an outfit with its garment
// references resolved. References to deleted garments are omitted from
// Garments but remain in Items.
type OutfitResponse struct {
	ID        uuid.UUID         `json:"id"      example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string            `json:"name"    example:"Friday casual"`
	Season    string            `json:"season"  example:"all"`
	Items     []uuid.UUID       `json:"items"`
	Garments  []GarmentResponse `json:"garments"`
	CreatedAt time.Time         `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name OutfitResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"garment not found"`
} // @name ErrorResponse

func toGarmentResponse(g *models.Garment) GarmentResponse {
	history := g.WearHistory
	if history == nil {
		history = []time.Time{}
	}
	return GarmentResponse{
		ID:          g.ID,
		Name:        g.Name,
		Category:    g.Category.String(),
		Color:       g.Color,
		Brand:       g.Brand,
		Material:    g.Material,
		Season:      g.Season.String(),
		Condition:   g.Condition.String(),
		Image:       g.Image,
		IsFavorite:  g.IsFavorite,
		LastWorn:    g.LastWorn,
		WearCount:   g.WearCount,
		WearHistory: history,
		CreatedAt:   g.CreatedAt,
	}
}

func toGarmentResponses(garments []*models.Garment) []GarmentResponse {
	out := make([]GarmentResponse, 0, len(garments))
	for _, g := range garments {
		out = append(out, toGarmentResponse(g))
	}
	return out
}

func toOutfitResponse(o *models.ResolvedOutfit) OutfitResponse {
	items := o.Items
	if items == nil {
		items = []uuid.UUID{}
	}
	return OutfitResponse{
		ID:        o.ID,
		Name:      o.Name,
		Season:    o.Season.String(),
		Items:     items,
		Garments:  toGarmentResponses(o.Garments),
		CreatedAt: o.CreatedAt,
	}
}
