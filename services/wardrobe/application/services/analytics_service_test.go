package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

func TestAnalyticsService_Compute(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeGarmentRepo()
	svc := NewAnalyticsService(repo, testLogger())
	svc.now = func() time.Time { return now }

	worn := func(name string, category models.Category, count int, lastWorn time.Time) *models.Garment {
		g := models.NewGarment(userID, name, category, "black")
		g.WearCount = count
		g.LastWorn = &lastWorn
		repo.garments[g.ID] = g
		return g
	}

	recent := worn("Daily Tee", models.CategoryShirt, 30, now.Add(-24*time.Hour))
	stale := worn("Forgotten Shirt", models.CategoryShirt, 2, now.Add(-31*24*time.Hour))
	fresh := worn("Weekly Jeans", models.CategoryPants, 10, now.Add(-29*24*time.Hour))

	neverWorn := models.NewGarment(userID, "New Scarf", models.CategoryAccessory, "red")
	repo.garments[neverWorn.ID] = neverWorn

	retired := models.NewGarment(userID, "Donated Coat", models.CategoryJacket, "gray")
	retired.Condition = models.ConditionDonated
	retired.WearCount = 99
	repo.garments[retired.ID] = retired

	got, err := svc.Compute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	t.Run("category counts exclude retired", func(t *testing.T) {
		counts := map[models.Category]int{}
		for _, c := range got.CategoryCounts {
			counts[c.Category] = c.Count
		}
		want := map[models.Category]int{
			models.CategoryShirt:     2,
			models.CategoryPants:     1,
			models.CategoryAccessory: 1,
		}
		if len(counts) != len(want) {
			t.Errorf("counts = %v, want %v", counts, want)
		}
		for category, n := range want {
			if counts[category] != n {
				t.Errorf("count[%v] = %d, want %d", category, counts[category], n)
			}
		}
	})

	t.Run("most worn leads with highest count and skips retired", func(t *testing.T) {
		if len(got.MostWorn) == 0 || got.MostWorn[0].ID != recent.ID {
			t.Fatalf("most worn = %+v, want %q first", got.MostWorn, recent.Name)
		}
		for _, g := range got.MostWorn {
			if g.ID == retired.ID {
				t.Error("retired garment leaked into most worn")
			}
		}
	})

	t.Run("least worn leads with never-worn garment", func(t *testing.T) {
		if len(got.LeastWorn) == 0 || got.LeastWorn[0].ID != neverWorn.ID {
			t.Fatalf("least worn = %+v, want %q first", got.LeastWorn, neverWorn.Name)
		}
	})

	t.Run("30 day cutoff", func(t *testing.T) {
		ids := map[uuid.UUID]bool{}
		for _, g := range got.NotWornRecently {
			ids[g.ID] = true
		}
		if !ids[stale.ID] {
			t.Error("garment worn 31 days ago missing from stale list")
		}
		if !ids[neverWorn.ID] {
			t.Error("never-worn garment missing from stale list")
		}
		if ids[fresh.ID] {
			t.Error("garment worn 29 days ago must not be stale")
		}
		if ids[retired.ID] {
			t.Error("retired garment leaked into stale list")
		}
	})
}

func TestAnalyticsService_tieBreakIsStable(t *testing.T) {
	userID := uuid.New()
	repo := newFakeGarmentRepo()
	svc := NewAnalyticsService(repo, testLogger())

	for i := 0; i < 8; i++ {
		g := models.NewGarment(userID, "Same Wear", models.CategoryShirt, "white")
		g.WearCount = 3
		repo.garments[g.ID] = g
	}

	first, err := svc.Compute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.Compute(context.Background(), userID)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}
		for j := range first.MostWorn {
			if first.MostWorn[j].ID != again.MostWorn[j].ID {
				t.Fatalf("most-worn order changed between runs at index %d", j)
			}
		}
	}
	if len(first.MostWorn) != 5 {
		t.Errorf("most worn returned %d garments, want capped at 5", len(first.MostWorn))
	}
}
