package models

import "fmt"

// Category is a value object for the garment category enumeration.
type Category string

const (
	CategoryShirt     Category = "shirt"
	CategoryPants     Category = "pants"
	CategoryShoes     Category = "shoes"
	CategoryJacket    Category = "jacket"
	CategoryAccessory Category = "accessory"
	CategoryWatch     Category = "watch"
	CategoryOther     Category = "other"
)

var categories = map[Category]struct{}{
	CategoryShirt:     {},
	CategoryPants:     {},
	CategoryShoes:     {},
	CategoryJacket:    {},
	CategoryAccessory: {},
	CategoryWatch:     {},
	CategoryOther:     {},
}

// ParseCategory validates s against the enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
