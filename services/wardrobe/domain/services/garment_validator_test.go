package services_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/services"
)

func TestValidateGarmentName(t *testing.T) {
	valid := []string{
		"Blue Oxford Shirt",
		"x",
		strings.Repeat("a", 255),
		"Jeans (slim) #2",
	}
	for _, name := range valid {
		t.Run("valid/"+name[:min(len(name), 20)], func(t *testing.T) {
			if err := services.ValidateGarmentName(name); err != nil {
				t.Errorf("expected %q to be valid, got %v", name, err)
			}
		})
	}

	invalid := map[string]string{
		"empty":               "",
		"only whitespace":     "   ",
		"leading whitespace":  " shirt",
		"trailing whitespace": "shirt ",
		"control character":   "shirt\x00name",
		"newline":             "shirt\nname",
		"too long":            strings.Repeat("a", 256),
	}
	for label, name := range invalid {
		t.Run("invalid/"+label, func(t *testing.T) {
			if err := services.ValidateGarmentName(name); err == nil {
				t.Errorf("expected %q to be rejected", name)
			}
		})
	}
}

func TestValidateGarmentForCreation(t *testing.T) {
	base := func() *models.Garment {
		return models.NewGarment(uuid.New(), "Blue Oxford Shirt", models.CategoryShirt, "blue")
	}

	t.Run("valid garment passes", func(t *testing.T) {
		if err := services.ValidateGarmentForCreation(base()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("nil garment rejected", func(t *testing.T) {
		if err := services.ValidateGarmentForCreation(nil); err == nil {
			t.Fatal("expected error for nil garment")
		}
	})

	t.Run("missing color rejected", func(t *testing.T) {
		g := base()
		g.Color = " "
		if err := services.ValidateGarmentForCreation(g); err == nil {
			t.Fatal("expected error for blank color")
		}
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		g := base()
		g.Category = models.Category("hat")
		if err := services.ValidateGarmentForCreation(g); err == nil {
			t.Fatal("expected error for unknown category")
		}
	})

	t.Run("negative wear count rejected", func(t *testing.T) {
		g := base()
		g.WearCount = -1
		if err := services.ValidateGarmentForCreation(g); err == nil {
			t.Fatal("expected error for negative wear count")
		}
	})

	t.Run("zero owner rejected", func(t *testing.T) {
		g := base()
		g.UserID = uuid.Nil
		if err := services.ValidateGarmentForCreation(g); err == nil {
			t.Fatal("expected error for zero user id")
		}
	})
}
