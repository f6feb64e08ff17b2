package models

import (
	"time"

	"github.com/google/uuid"
)

// Garment is the core aggregate of the wardrobe context: one owned clothing
// item with descriptive attributes, lifecycle condition and wear statistics.
//
// WearHistory is append-only; its length is not required to equal WearCount,
// because WearCount is caller-supplied on wear-recording updates while the
// history gains exactly one entry per recorded wear.
type Garment struct {
	ID         uuid.UUID
	UserID     uuid.UUID // owner scope; always filter by this in queries
	Name       string
	Category   Category
	Color      string
	Brand      string
	Material   string
	Season     Season
	Condition  Condition
	Image      string // image store object key; empty when no image uploaded
	IsFavorite bool

	LastWorn    *time.Time
	WearCount   int
	WearHistory []time.Time

	CreatedAt time.Time
}

// NewGarment constructs a valid Garment aggregate with generated ID, current
// timestamp and zeroed wear statistics.
func NewGarment(userID uuid.UUID, name string, category Category, color string) *Garment {
	return &Garment{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Color:     color,
		Season:    SeasonAll,
		Condition: ConditionNew,
		CreatedAt: time.Now().UTC(),
	}
}

// RecordWear sets the caller-supplied wear count and last-worn timestamp and
// appends the timestamp to the history.
func (g *Garment) RecordWear(wearCount int, wornAt time.Time) {
	g.WearCount = wearCount
	g.LastWorn = &wornAt
	g.WearHistory = append(g.WearHistory, wornAt)
}

// Retired reports whether the garment's condition excludes it from default views.
func (g *Garment) Retired() bool {
	return g.Condition.Retired()
}
