package models

import "fmt"

// Season is a value object for the garment season enumeration.
// SeasonAll marks a garment as wearable year-round and matches every
// season-filtered query.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

var seasons = map[Season]struct{}{
	SeasonSpring: {},
	SeasonSummer: {},
	SeasonFall:   {},
	SeasonWinter: {},
	SeasonAll:    {},
}

// ParseSeason validates s against the enumeration. An empty string yields
// the SeasonAll default.
func ParseSeason(s string) (Season, error) {
	if s == "" {
		return SeasonAll, nil
	}
	se := Season(s)
	if _, ok := seasons[se]; !ok {
		return "", fmt.Errorf("unknown season %q", s)
	}
	return se, nil
}

// String returns the underlying string value.
func (s Season) String() string {
	return string(s)
}
