package entity

import (
	"fmt"
	"strings"
)

// Kind is the source bucket a search result came from.
type Kind string

const (
	KindRecent   Kind = "recent"
	KindExact    Kind = "exact"
	KindFavorite Kind = "favorite"
	KindSearch   Kind = "search"
)

// Precedence returns the bucket rank of the kind (0 = shown first).
// Unknown kinds return -1.
func (k Kind) Precedence() int {
	switch k {
	case KindRecent:
		return 0
	case KindExact:
		return 1
	case KindFavorite:
		return 2
	case KindSearch:
		return 3
	default:
		return -1
	}
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	return k.Precedence() >= 0
}

// Category is the semantic domain of a search input.
type Category string

const (
	CategoryVehicle  Category = "vehicle"
	CategoryLocation Category = "location"
	CategoryDriver   Category = "driver"
	CategoryGeneral  Category = "general"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{CategoryVehicle, CategoryLocation, CategoryDriver, CategoryGeneral}
}

// RecentKey returns the key under which the category's recent list is stored.
func (c Category) RecentKey() string {
	switch c {
	case CategoryVehicle:
		return "vehicles"
	case CategoryLocation:
		return "locations"
	case CategoryDriver:
		return "drivers"
	default:
		return "general"
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryVehicle, CategoryLocation, CategoryDriver, CategoryGeneral:
		return true
	}
	return false
}

// ParseCategory accepts singular or plural spellings ("vehicle", "vehicles").
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vehicle", "vehicles":
		return CategoryVehicle, nil
	case "location", "locations":
		return CategoryLocation, nil
	case "driver", "drivers":
		return CategoryDriver, nil
	case "general", "":
		return CategoryGeneral, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Metadata keys commonly attached to search results.
const (
	MetaVehicleID        = "vehicle_id"
	MetaLocationID       = "location_id"
	MetaDriverID         = "driver_id"
	MetaDefaultUnitPrice = "default_unit_price"
	MetaHint             = "hint"
)

// SearchResult is one candidate shown in a suggestion list.
type SearchResult struct {
	ID       string            `json:"id"`
	Value    string            `json:"value"`
	Label    string            `json:"label"`
	Kind     Kind              `json:"kind"`
	Category Category          `json:"category"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DisplayLabel returns Label, falling back to Value.
func (r SearchResult) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Value
}

// Meta returns a metadata value or "" when absent.
func (r SearchResult) Meta(key string) string {
	if r.Metadata == nil {
		return ""
	}
	return r.Metadata[key]
}
