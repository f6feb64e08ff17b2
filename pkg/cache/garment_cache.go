package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// GarmentCacheTTL is the time-to-live for cached garments.
	GarmentCacheTTL = 24 * time.Hour

	garmentCacheKeyPrefix = "garment"
)

// CachedGarment is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash; WearHistory is JSON-encoded into a
// single hash field.
type CachedGarment struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Color       string      `json:"color"`
	Brand       string      `json:"brand"`
	Material    string      `json:"material"`
	Season      string      `json:"season"`
	Condition   string      `json:"condition"`
	Image       string      `json:"image"`
	IsFavorite  bool        `json:"is_favorite"`
	LastWorn    *time.Time  `json:"last_worn,omitempty"`
	WearCount   int         `json:"wear_count"`
	WearHistory []time.Time `json:"wear_history"`
	CreatedAt   time.Time   `json:"created_at"`
}

// GarmentCache provides structured read/write operations for garment cache
// entries. Keys are scoped by userID to prevent cross-tenant data leakage.
// Key format: "garment:{userID}:{garmentID}"
type GarmentCache struct {
	client *RedisClient
}

// NewGarmentCache creates a new GarmentCache backed by the given RedisClient.
func NewGarmentCache(r *RedisClient) *GarmentCache {
	return &GarmentCache{client: r}
}

// Get retrieves a cached garment by user + garment ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *GarmentCache) Get(ctx context.Context, userID, garmentID uuid.UUID) (*CachedGarment, error) {
	key := c.key(userID, garmentID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	uid, err := uuid.Parse(vals["user_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse user_id: %w", err)
	}
	wearCount, err := strconv.Atoi(vals["wear_count"])
	if err != nil {
		return nil, fmt.Errorf("cache parse wear_count: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	g := &CachedGarment{
		ID:         id,
		UserID:     uid,
		Name:       vals["name"],
		Category:   vals["category"],
		Color:      vals["color"],
		Brand:      vals["brand"],
		Material:   vals["material"],
		Season:     vals["season"],
		Condition:  vals["condition"],
		Image:      vals["image"],
		IsFavorite: vals["is_favorite"] == "1",
		WearCount:  wearCount,
		CreatedAt:  createdAt,
	}
	if lw := vals["last_worn"]; lw != "" {
		t, err := time.Parse(time.RFC3339Nano, lw)
		if err != nil {
			return nil, fmt.Errorf("cache parse last_worn: %w", err)
		}
		g.LastWorn = &t
	}
	if wh := vals["wear_history"]; wh != "" {
		if err := json.Unmarshal([]byte(wh), &g.WearHistory); err != nil {
			return nil, fmt.Errorf("cache parse wear_history: %w", err)
		}
	}
	return g, nil
}

// Set writes a cached garment as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *GarmentCache) Set(ctx context.Context, g *CachedGarment) error {
	key := c.key(g.UserID, g.ID)

	lastWorn := ""
	if g.LastWorn != nil {
		lastWorn = g.LastWorn.UTC().Format(time.RFC3339Nano)
	}
	isFavorite := "0"
	if g.IsFavorite {
		isFavorite = "1"
	}
	history, err := json.Marshal(g.WearHistory)
	if err != nil {
		return fmt.Errorf("cache marshal wear_history: %w", err)
	}

	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", g.ID.String(),
		"user_id", g.UserID.String(),
		"name", g.Name,
		"category", g.Category,
		"color", g.Color,
		"brand", g.Brand,
		"material", g.Material,
		"season", g.Season,
		"condition", g.Condition,
		"image", g.Image,
		"is_favorite", isFavorite,
		"last_worn", lastWorn,
		"wear_count", strconv.Itoa(g.WearCount),
		"wear_history", string(history),
		"created_at", g.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, GarmentCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached garment.
func (c *GarmentCache) Delete(ctx context.Context, userID, garmentID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, garmentID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "garment:{userID}:{garmentID}"
func (c *GarmentCache) key(userID, garmentID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", garmentCacheKeyPrefix, userID, garmentID)
}
