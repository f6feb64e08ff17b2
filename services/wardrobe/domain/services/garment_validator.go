package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

const maxGarmentNameLength = 255

// ValidateGarmentName enforces business rules for garment names beyond the
// required/non-empty check done at the request boundary.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
//   - At most 255 characters
func ValidateGarmentName(s string) error {
	if s != strings.TrimSpace(s) {
		return fmt.Errorf("garment name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("garment name must not be empty")
	}

	if len(s) > maxGarmentNameLength {
		return fmt.Errorf("garment name must not exceed %d characters", maxGarmentNameLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("garment name must not contain control characters")
		}
	}

	return nil
}

// ValidateGarmentForCreation performs cross-field validation on a
// fully-constructed Garment aggregate before it is persisted.
func ValidateGarmentForCreation(g *models.Garment) error {
	if g == nil {
		return fmt.Errorf("garment cannot be nil")
	}

	if err := ValidateGarmentName(g.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if strings.TrimSpace(g.Color) == "" {
		return fmt.Errorf("color must be set")
	}

	if _, err := models.ParseCategory(g.Category.String()); err != nil {
		return err
	}

	if g.WearCount < 0 {
		return fmt.Errorf("wear count must not be negative")
	}

	if g.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	if g.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
