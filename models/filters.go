package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Filter / Sort Configuration
// ═══════════════════════════════════════════════════════════

// PriceRange is an inclusive price window. A nil Max means the range
// is open-ended ("over $300").
type PriceRange struct {
	Min float64
	Max *float64
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Max == nil || price <= *r.Max
}

// ParsePriceRange parses the storefront's price bucket values,
// "50-100" for a bounded range and "300+" for an open-ended one.
func ParsePriceRange(value string) (*PriceRange, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if open, ok := strings.CutSuffix(value, "+"); ok {
		min, err := strconv.ParseFloat(open, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price range %q: %w", value, err)
		}
		return &PriceRange{Min: min}, nil
	}

	lo, hi, ok := strings.Cut(value, "-")
	if !ok {
		return nil, fmt.Errorf("invalid price range %q", value)
	}
	min, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price range %q: %w", value, err)
	}
	max, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price range %q: %w", value, err)
	}
	return &PriceRange{Min: min, Max: &max}, nil
}

// FilterConfig carries the listing page's filter state. Zero values
// mean "not filtered on".
type FilterConfig struct {
	Category    string
	PriceRange  *PriceRange
	Size        string
	Color       string // case-insensitive substring match
	InStockOnly bool
}

// IsZero reports whether no predicate is active.
func (f FilterConfig) IsZero() bool {
	return f.Category == "" && f.PriceRange == nil && f.Size == "" &&
		f.Color == "" && !f.InStockOnly
}

// SortKey selects the ordering of a filtered product list.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNameAsc   SortKey = "name-asc"
	// SortNewest is accepted but has no ordering effect: products carry
	// no creation timestamp, so it behaves as a stable no-op.
	SortNewest SortKey = "newest"
)

// ParseSortKey maps a query value onto a known SortKey, defaulting to
// featured ordering like the listing page.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNameAsc, SortNewest, SortFeatured:
		return SortKey(value)
	default:
		return SortFeatured
	}
}

// ═══════════════════════════════════════════════════════════
// Filter Metadata (sidebar data for the listing page)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories   []Category        `json:"categories"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
	PriceBuckets []PriceBucket     `json:"priceBuckets"`
	Sizes        []string          `json:"sizes"`
	Colors       []string          `json:"colors"`
	Availability *AvailabilityData `json:"availability"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceBucket is one selectable price range option.
type PriceBucket struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PriceBuckets returns the fixed price windows offered by the listing
// page sidebar.
func PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{Label: "Under $50", Value: "0-50"},
		{Label: "$50 - $100", Value: "50-100"},
		{Label: "$100 - $200", Value: "100-200"},
		{Label: "$200 - $300", Value: "200-300"},
		{Label: "Over $300", Value: "300+"},
	}
}
