package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	domainevents "github.com/ghuser/wardrobe/services/wardrobe/domain/events"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

const garmentColumns = `id, user_id, name, category, color, brand, material,
	season, condition, image, is_favorite, last_worn, wear_count, wear_history, created_at`

// GarmentRepository implements repositories.GarmentRepository against PostgreSQL.
type GarmentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewGarmentRepository returns a GarmentRepository backed by the given
// connection pool and event bus. The bus is used to publish
// GarmentCreatedEvents in the same transaction as the insert.
func NewGarmentRepository(db *database.Database, bus *events.EventBus) *GarmentRepository {
	return &GarmentRepository{db: db, bus: bus}
}

// Save persists a new Garment and publishes a GarmentCreatedEvent within the
// same transaction.
func (r *GarmentRepository) Save(ctx context.Context, g *models.Garment) error {
	history, err := json.Marshal(g.WearHistory)
	if err != nil {
		return fmt.Errorf("marshal wear history: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO garments
				(id, user_id, name, category, color, brand, material,
				 season, condition, image, is_favorite, last_worn, wear_count, wear_history, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			g.ID, g.UserID, g.Name, g.Category.String(), g.Color, g.Brand, g.Material,
			g.Season.String(), g.Condition.String(), g.Image, g.IsFavorite,
			nullTime(g.LastWorn), g.WearCount, history, g.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert garment: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, g); err != nil {
				return fmt.Errorf("publish garment created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Garment by ID scoped to the user.
// Returns ErrGarmentNotFound if not found (or owned by someone else).
func (r *GarmentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Garment, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	g, err := scanGarment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wardrobedomain.ErrGarmentNotFound
		}
		return nil, fmt.Errorf("query garment: %w", err)
	}
	return g, nil
}

// FindByUserID retrieves the user's garments matching filter. Retired
// conditions are excluded unless the filter requests a condition explicitly.
func (r *GarmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter repositories.GarmentFilter) ([]*models.Garment, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + garmentColumns + ` FROM garments WHERE user_id = $1`)
	args := []any{userID}

	if filter.Condition != nil {
		args = append(args, filter.Condition.String())
		fmt.Fprintf(&sb, " AND condition = $%d", len(args))
	} else {
		sb.WriteString(` AND condition NOT IN ('donated', 'sold', 'archived')`)
	}
	if filter.Category != nil {
		args = append(args, filter.Category.String())
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if filter.Color != nil {
		args = append(args, *filter.Color)
		fmt.Fprintf(&sb, " AND color = $%d", len(args))
	}
	if filter.Season != nil {
		args = append(args, filter.Season.String())
		fmt.Fprintf(&sb, " AND season = $%d", len(args))
	}
	if filter.IsFavorite != nil {
		args = append(args, *filter.IsFavorite)
		fmt.Fprintf(&sb, " AND is_favorite = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC, id")

	return r.queryGarments(ctx, sb.String(), args...)
}

// FindByIDs loads the given garments for the user, omitting unresolvable ids.
func (r *GarmentRepository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Garment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := []any{userID}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		args = append(args, id)
		placeholders[i] = fmt.Sprintf("$%d", len(args))
	}

	query := `SELECT ` + garmentColumns + ` FROM garments WHERE user_id = $1 AND id IN (` +
		strings.Join(placeholders, ", ") + `)`
	return r.queryGarments(ctx, query, args...)
}

// FindBySeason retrieves non-retired garments wearable in the given season
// (their own season or "all").
func (r *GarmentRepository) FindBySeason(ctx context.Context, userID uuid.UUID, season models.Season) ([]*models.Garment, error) {
	return r.queryGarments(ctx, `
		SELECT `+garmentColumns+` FROM garments
		WHERE user_id = $1
		  AND season IN ($2, 'all')
		  AND condition NOT IN ('donated', 'sold', 'archived')
		ORDER BY created_at DESC, id`,
		userID, season.String(),
	)
}

// Update persists the full garment record. Last write wins; there is no
// version check, so concurrent updates to the same record are an accepted race.
func (r *GarmentRepository) Update(ctx context.Context, g *models.Garment) error {
	history, err := json.Marshal(g.WearHistory)
	if err != nil {
		return fmt.Errorf("marshal wear history: %w", err)
	}

	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE garments SET
			name = $3, category = $4, color = $5, brand = $6, material = $7,
			season = $8, condition = $9, image = $10, is_favorite = $11,
			last_worn = $12, wear_count = $13, wear_history = $14
		WHERE id = $1 AND user_id = $2`,
		g.ID, g.UserID, g.Name, g.Category.String(), g.Color, g.Brand, g.Material,
		g.Season.String(), g.Condition.String(), g.Image, g.IsFavorite,
		nullTime(g.LastWorn), g.WearCount, history,
	)
	if err != nil {
		return fmt.Errorf("update garment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wardrobedomain.ErrGarmentNotFound
	}
	return nil
}

// Delete removes a garment by ID scoped to the user.
func (r *GarmentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM garments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete garment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wardrobedomain.ErrGarmentNotFound
	}
	return nil
}

// CountByCategory groups the user's non-retired garments by category.
// Bucket order is not part of the contract.
func (r *GarmentRepository) CountByCategory(ctx context.Context, userID uuid.UUID) ([]repositories.CategoryCount, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT category, COUNT(*) FROM garments
		WHERE user_id = $1 AND condition NOT IN ('donated', 'sold', 'archived')
		GROUP BY category`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var counts []repositories.CategoryCount
	for rows.Next() {
		var c repositories.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// FindMostWorn returns up to limit non-retired garments by wear count
// descending. Ties are broken by id ascending so results are deterministic.
func (r *GarmentRepository) FindMostWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error) {
	return r.queryGarments(ctx, `
		SELECT `+garmentColumns+` FROM garments
		WHERE user_id = $1 AND condition NOT IN ('donated', 'sold', 'archived')
		ORDER BY wear_count DESC, id ASC
		LIMIT $2`,
		userID, limit,
	)
}

// FindLeastWorn is FindMostWorn with ascending wear count.
func (r *GarmentRepository) FindLeastWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error) {
	return r.queryGarments(ctx, `
		SELECT `+garmentColumns+` FROM garments
		WHERE user_id = $1 AND condition NOT IN ('donated', 'sold', 'archived')
		ORDER BY wear_count ASC, id ASC
		LIMIT $2`,
		userID, limit,
	)
}

// FindNotWornSince returns non-retired garments never worn or last worn at or
// before cutoff.
func (r *GarmentRepository) FindNotWornSince(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]*models.Garment, error) {
	return r.queryGarments(ctx, `
		SELECT `+garmentColumns+` FROM garments
		WHERE user_id = $1
		  AND (last_worn IS NULL OR last_worn <= $2)
		  AND condition NOT IN ('donated', 'sold', 'archived')
		ORDER BY last_worn ASC NULLS FIRST, id`,
		userID, cutoff,
	)
}

func (r *GarmentRepository) queryGarments(ctx context.Context, query string, args ...any) ([]*models.Garment, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query garments: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var garments []*models.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan garment: %w", err)
		}
		garments = append(garments, g)
	}
	return garments, rows.Err()
}

func (r *GarmentRepository) publishCreated(tx *sql.Tx, g *models.Garment) error {
	event := domainevents.GarmentCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		GarmentID:  g.ID,
		UserID:     g.UserID,
		Name:       g.Name,
		Category:   g.Category.String(),
		OccurredAt: g.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicGarmentCreated, msg)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGarment(s scanner) (*models.Garment, error) {
	var (
		g        models.Garment
		lastWorn sql.NullTime
		history  []byte
	)
	if err := s.Scan(
		&g.ID, &g.UserID, &g.Name, &g.Category, &g.Color, &g.Brand, &g.Material,
		&g.Season, &g.Condition, &g.Image, &g.IsFavorite,
		&lastWorn, &g.WearCount, &history, &g.CreatedAt,
	); err != nil {
		return nil, err
	}
	if lastWorn.Valid {
		t := lastWorn.Time
		g.LastWorn = &t
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &g.WearHistory); err != nil {
			return nil, fmt.Errorf("unmarshal wear history: %w", err)
		}
	}
	return &g, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
