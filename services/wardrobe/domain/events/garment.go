package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the wardrobe context.
const (
	// TopicGarmentCreated is published transactionally with the garment insert.
	TopicGarmentCreated = "garment.created"

	// TopicGarmentWorn is published after a wear-recording update.
	TopicGarmentWorn = "garment.worn"
)

// GarmentCreatedEvent is published after a new Garment is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicGarmentCreated).
type GarmentCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	GarmentID  uuid.UUID `json:"garment_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// GarmentWornEvent is published when a wear event is recorded against a garment.
type GarmentWornEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Version   int       `json:"version"`
	GarmentID uuid.UUID `json:"garment_id"`
	UserID    uuid.UUID `json:"user_id"`
	WearCount int       `json:"wear_count"`
	WornAt    time.Time `json:"worn_at"`
}
