package services

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// Product names sort with locale-aware collation, matching how the
// listing page compares names. CompareString mutates the collator's
// internal iterator state, so collators are pooled instead of shared
// across concurrent handlers.
var nameCollators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// Apply runs the listing page's filter pipeline and then orders the
// result. Pure: the input slice is never modified and identical inputs
// produce identical output.
func Apply(products []models.Product, cfg models.FilterConfig, key models.SortKey) []models.Product {
	return SortProducts(FilterProducts(products, cfg), key)
}

// FilterProducts keeps products matching every active predicate.
// Predicates are AND-combined and order-independent; an empty result
// is a valid outcome, not an error.
func FilterProducts(products []models.Product, cfg models.FilterConfig) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, cfg) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilters(p models.Product, cfg models.FilterConfig) bool {
	if cfg.Category != "" && p.Category != cfg.Category {
		return false
	}
	if cfg.PriceRange != nil && !cfg.PriceRange.Contains(p.Price) {
		return false
	}
	if cfg.Size != "" && !hasSize(p, cfg.Size) {
		return false
	}
	if cfg.Color != "" && !hasColor(p, cfg.Color) {
		return false
	}
	if cfg.InStockOnly && !p.InStock {
		return false
	}
	return true
}

func hasSize(p models.Product, size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// hasColor matches the requested colour as a case-insensitive
// substring of any product colour, so "navy" matches "Solid Navy".
func hasColor(p models.Product, color string) bool {
	want := strings.ToLower(color)
	for _, c := range p.Colors {
		if strings.Contains(strings.ToLower(c), want) {
			return true
		}
	}
	return false
}

// SortProducts returns a copy of products ordered by the given key.
// Every sort is stable, so ties keep their incoming (catalog) order;
// featured is a stable partition putting featured products first, and
// newest is a documented no-op.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case models.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case models.SortNameAsc:
		col := nameCollators.Get().(*collate.Collator)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
		nameCollators.Put(col)
	case models.SortFeatured:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out
}
