package models

import "fmt"

// Condition is a value object for the garment condition enumeration.
type Condition string

const (
	ConditionNew      Condition = "new"
	ConditionGood     Condition = "good"
	ConditionTorn     Condition = "torn"
	ConditionDonated  Condition = "donated"
	ConditionSold     Condition = "sold"
	ConditionArchived Condition = "archived"
)

var conditions = map[Condition]struct{}{
	ConditionNew:      {},
	ConditionGood:     {},
	ConditionTorn:     {},
	ConditionDonated:  {},
	ConditionSold:     {},
	ConditionArchived: {},
}

// RetiredConditions are excluded from default listings, analytics and
// season suggestions. Retired garments stay retrievable by direct id lookup.
var RetiredConditions = []Condition{ConditionDonated, ConditionSold, ConditionArchived}

// ParseCondition validates s against the enumeration. An empty string yields
// the ConditionNew default.
func ParseCondition(s string) (Condition, error) {
	if s == "" {
		return ConditionNew, nil
	}
	c := Condition(s)
	if _, ok := conditions[c]; !ok {
		return "", fmt.Errorf("unknown condition %q", s)
	}
	return c, nil
}

// Retired reports whether the condition excludes the garment from default views.
func (c Condition) Retired() bool {
	return c == ConditionDonated || c == ConditionSold || c == ConditionArchived
}

// String returns the underlying string value.
func (c Condition) String() string {
	return string(c)
}
