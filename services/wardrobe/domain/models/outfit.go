package models

import (
	"time"

	"github.com/google/uuid"
)

// Outfit is a named set of garment references scoped to one owner.
//
// Items are raw references: duplicates are kept and existence is not checked
// at write time, so a deleted garment id may remain listed. Queries that
// resolve items simply omit ids that no longer load.
type Outfit struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Season    Season
	Items     []uuid.UUID
	CreatedAt time.Time
}

// NewOutfit constructs a valid Outfit aggregate with generated ID and
// current timestamp.
func NewOutfit(userID uuid.UUID, name string, season Season, items []uuid.UUID) *Outfit {
	return &Outfit{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Season:    season,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}
}

// ResolvedOutfit is an Outfit with its item references expanded to the
// current garment records. Unresolvable references are omitted.
type ResolvedOutfit struct {
	Outfit
	Garments []*Garment
}
