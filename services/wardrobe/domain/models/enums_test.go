package models_test

import (
	"testing"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"shirt", "pants", "shoes", "jacket", "accessory", "watch", "other"} {
		if _, err := models.ParseCategory(s); err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"", "hat", "SHIRT", "shirt "} {
		if _, err := models.ParseCategory(s); err == nil {
			t.Errorf("ParseCategory(%q) expected error", s)
		}
	}
}

func TestParseSeason(t *testing.T) {
	for _, s := range []string{"spring", "summer", "fall", "winter", "all"} {
		if _, err := models.ParseSeason(s); err != nil {
			t.Errorf("ParseSeason(%q) unexpected error: %v", s, err)
		}
	}

	// Empty input falls back to the "all" default.
	season, err := models.ParseSeason("")
	if err != nil {
		t.Fatalf("ParseSeason(\"\") unexpected error: %v", err)
	}
	if season != models.SeasonAll {
		t.Errorf("ParseSeason(\"\") = %v, want all", season)
	}

	if _, err := models.ParseSeason("autumn"); err == nil {
		t.Error("ParseSeason(\"autumn\") expected error")
	}
}

func TestParseCondition(t *testing.T) {
	for _, s := range []string{"new", "good", "torn", "donated", "sold", "archived"} {
		if _, err := models.ParseCondition(s); err != nil {
			t.Errorf("ParseCondition(%q) unexpected error: %v", s, err)
		}
	}

	// Empty input falls back to the "new" default.
	condition, err := models.ParseCondition("")
	if err != nil {
		t.Fatalf("ParseCondition(\"\") unexpected error: %v", err)
	}
	if condition != models.ConditionNew {
		t.Errorf("ParseCondition(\"\") = %v, want new", condition)
	}

	if _, err := models.ParseCondition("worn"); err == nil {
		t.Error("ParseCondition(\"worn\") expected error")
	}
}

func TestConditionRetired(t *testing.T) {
	retired := map[models.Condition]bool{
		models.ConditionNew:      false,
		models.ConditionGood:     false,
		models.ConditionTorn:     false,
		models.ConditionDonated:  true,
		models.ConditionSold:     true,
		models.ConditionArchived: true,
	}
	for c, want := range retired {
		if got := c.Retired(); got != want {
			t.Errorf("%v.Retired() = %v, want %v", c, got, want)
		}
	}
}
