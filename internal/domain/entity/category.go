package entity

import "github.com/pkg/errors"

// Category classifies a place in the catalog. The set is fixed: a listing
// is always queried for exactly one category and never mixes them.
//
// The values are the literal strings stored in the `categoria` field of
// the place documents.
type Category string

const (
	CategoryCoffeeShops Category = "cafeterias"
	CategoryMountains   Category = "montanas"
	CategoryBreweries   Category = "cervecerias"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{CategoryCoffeeShops, CategoryMountains, CategoryBreweries}
}

// ParseCategory validates a raw category string against the fixed set.
func ParseCategory(raw string) (Category, error) {
	for _, category := range Categories() {
		if Category(raw) == category {
			return category, nil
		}
	}

	return "", errors.Errorf("unknown category: %q", raw)
}

func (c Category) String() string {
	return string(c)
}
