package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/database"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

const outfitColumns = `id, user_id, name, season, items, created_at`

// OutfitRepository implements repositories.OutfitRepository against PostgreSQL.
// Item references are stored as a jsonb uuid array, which keeps duplicates
// and dangling references exactly as written.
type OutfitRepository struct {
	db *database.Database
}

// NewOutfitRepository returns an OutfitRepository backed by the given pool.
func NewOutfitRepository(db *database.Database) *OutfitRepository {
	return &OutfitRepository{db: db}
}

// Save persists a new Outfit.
func (r *OutfitRepository) Save(ctx context.Context, o *models.Outfit) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal outfit items: %w", err)
	}

	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO outfits (id, user_id, name, season, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.UserID, o.Name, o.Season.String(), items, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert outfit: %w", err)
	}
	return nil
}

// GetByID retrieves an Outfit by ID scoped to the user.
// Returns ErrOutfitNotFound if not found (or owned by someone else).
func (r *OutfitRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Outfit, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+outfitColumns+` FROM outfits WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	o, err := scanOutfit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wardrobedomain.ErrOutfitNotFound
		}
		return nil, fmt.Errorf("query outfit: %w", err)
	}
	return o, nil
}

// FindByUserID retrieves all of the user's outfits.
func (r *OutfitRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Outfit, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+outfitColumns+` FROM outfits WHERE user_id = $1 ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outfits: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var outfits []*models.Outfit
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outfit: %w", err)
		}
		outfits = append(outfits, o)
	}
	return outfits, rows.Err()
}

// Update persists the full outfit record (last-write-wins).
func (r *OutfitRepository) Update(ctx context.Context, o *models.Outfit) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal outfit items: %w", err)
	}

	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE outfits SET name = $3, season = $4, items = $5
		WHERE id = $1 AND user_id = $2`,
		o.ID, o.UserID, o.Name, o.Season.String(), items,
	)
	if err != nil {
		return fmt.Errorf("update outfit: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wardrobedomain.ErrOutfitNotFound
	}
	return nil
}

// Delete removes an outfit by ID scoped to the user.
func (r *OutfitRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM outfits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return wardrobedomain.ErrOutfitNotFound
	}
	return nil
}

func scanOutfit(s scanner) (*models.Outfit, error) {
	var (
		o     models.Outfit
		items []byte
	)
	if err := s.Scan(&o.ID, &o.UserID, &o.Name, &o.Season, &items, &o.CreatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal outfit items: %w", err)
		}
	}
	return &o, nil
}
