package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/repositories"
)

// fakeGarmentRepo is an in-memory repositories.GarmentRepository with the
// same visibility semantics as the Postgres implementation.
type fakeGarmentRepo struct {
	garments map[uuid.UUID]*models.Garment

	saveErr   error
	updateErr error
}

func newFakeGarmentRepo() *fakeGarmentRepo {
	return &fakeGarmentRepo{garments: map[uuid.UUID]*models.Garment{}}
}

func (f *fakeGarmentRepo) Save(_ context.Context, g *models.Garment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *g
	f.garments[g.ID] = &cp
	return nil
}

func (f *fakeGarmentRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Garment, error) {
	g, ok := f.garments[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrGarmentNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGarmentRepo) FindByUserID(_ context.Context, userID uuid.UUID, filter repositories.GarmentFilter) ([]*models.Garment, error) {
	var out []*models.Garment
	for _, g := range f.sorted() {
		if g.UserID != userID {
			continue
		}
		if filter.Condition != nil {
			if g.Condition != *filter.Condition {
				continue
			}
		} else if g.Retired() {
			continue
		}
		if filter.Category != nil && g.Category != *filter.Category {
			continue
		}
		if filter.Color != nil && g.Color != *filter.Color {
			continue
		}
		if filter.Season != nil && g.Season != *filter.Season {
			continue
		}
		if filter.IsFavorite != nil && g.IsFavorite != *filter.IsFavorite {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeGarmentRepo) FindByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Garment, error) {
	var out []*models.Garment
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if g, ok := f.garments[id]; ok && g.UserID == userID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeGarmentRepo) FindBySeason(_ context.Context, userID uuid.UUID, season models.Season) ([]*models.Garment, error) {
	var out []*models.Garment
	for _, g := range f.sorted() {
		if g.UserID != userID || g.Retired() {
			continue
		}
		if g.Season != season && g.Season != models.SeasonAll {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeGarmentRepo) Update(_ context.Context, g *models.Garment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	existing, ok := f.garments[g.ID]
	if !ok || existing.UserID != g.UserID {
		return domain.ErrGarmentNotFound
	}
	cp := *g
	f.garments[g.ID] = &cp
	return nil
}

func (f *fakeGarmentRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	g, ok := f.garments[id]
	if !ok || g.UserID != userID {
		return domain.ErrGarmentNotFound
	}
	delete(f.garments, id)
	return nil
}

func (f *fakeGarmentRepo) CountByCategory(_ context.Context, userID uuid.UUID) ([]repositories.CategoryCount, error) {
	buckets := map[models.Category]int{}
	for _, g := range f.garments {
		if g.UserID == userID && !g.Retired() {
			buckets[g.Category]++
		}
	}
	var out []repositories.CategoryCount
	for category, count := range buckets {
		out = append(out, repositories.CategoryCount{Category: category, Count: count})
	}
	return out, nil
}

func (f *fakeGarmentRepo) FindMostWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error) {
	return f.byWear(userID, limit, true)
}

func (f *fakeGarmentRepo) FindLeastWorn(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Garment, error) {
	return f.byWear(userID, limit, false)
}

func (f *fakeGarmentRepo) FindNotWornSince(_ context.Context, userID uuid.UUID, cutoff time.Time) ([]*models.Garment, error) {
	var out []*models.Garment
	for _, g := range f.sorted() {
		if g.UserID != userID || g.Retired() {
			continue
		}
		if g.LastWorn == nil || !g.LastWorn.After(cutoff) {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeGarmentRepo) byWear(userID uuid.UUID, limit int, desc bool) ([]*models.Garment, error) {
	var out []*models.Garment
	for _, g := range f.sorted() {
		if g.UserID == userID && !g.Retired() {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WearCount != out[j].WearCount {
			if desc {
				return out[i].WearCount > out[j].WearCount
			}
			return out[i].WearCount < out[j].WearCount
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// sorted returns garments in id order so fake queries are deterministic.
func (f *fakeGarmentRepo) sorted() []*models.Garment {
	out := make([]*models.Garment, 0, len(f.garments))
	for _, g := range f.garments {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// fakeOutfitRepo is an in-memory repositories.OutfitRepository.
type fakeOutfitRepo struct {
	outfits map[uuid.UUID]*models.Outfit
}

func newFakeOutfitRepo() *fakeOutfitRepo {
	return &fakeOutfitRepo{outfits: map[uuid.UUID]*models.Outfit{}}
}

func (f *fakeOutfitRepo) Save(_ context.Context, o *models.Outfit) error {
	cp := *o
	f.outfits[o.ID] = &cp
	return nil
}

func (f *fakeOutfitRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Outfit, error) {
	o, ok := f.outfits[id]
	if !ok || o.UserID != userID {
		return nil, domain.ErrOutfitNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOutfitRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*models.Outfit, error) {
	var out []*models.Outfit
	for _, o := range f.outfits {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (f *fakeOutfitRepo) Update(_ context.Context, o *models.Outfit) error {
	existing, ok := f.outfits[o.ID]
	if !ok || existing.UserID != o.UserID {
		return domain.ErrOutfitNotFound
	}
	cp := *o
	f.outfits[o.ID] = &cp
	return nil
}

func (f *fakeOutfitRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	o, ok := f.outfits[id]
	if !ok || o.UserID != userID {
		return domain.ErrOutfitNotFound
	}
	delete(f.outfits, id)
	return nil
}

// fakeImageStore records stores and releases without touching object storage.
type fakeImageStore struct {
	stored     []string
	released   []string
	storeErr   error
	releaseErr error
}

func (f *fakeImageStore) Store(_ context.Context, _ io.Reader, _ int64, _ string) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	key := fmt.Sprintf("garments/%d", len(f.stored))
	f.stored = append(f.stored, key)
	return key, nil
}

func (f *fakeImageStore) Release(_ context.Context, key string) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	f.released = append(f.released, key)
	return nil
}

var errBoom = errors.New("boom")
