package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

var (
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
)

// Store holds the read-only product catalog. It is populated once from
// the static seed, validated, and never mutated afterwards, so reads
// need no locking.
type Store struct {
	products   []models.Product
	categories []models.Category
	byID       map[int]int // product id -> index in products
}

// NewStore validates the given records and builds a store over them.
// Catalog order follows the given slice order.
func NewStore(products []models.Product, categories []models.Category) (*Store, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	byID := make(map[int]int, len(products))
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product %d (%q): %w", p.ID, p.Name, err)
		}
		if len(p.Images) > 0 && p.Image != p.Images[0] {
			return nil, fmt.Errorf("product %d (%q): image must duplicate images[0]", p.ID, p.Name)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = i
	}

	for _, cat := range categories {
		if err := validate.Struct(cat); err != nil {
			return nil, fmt.Errorf("invalid category %q: %w", cat.ID, err)
		}
	}

	return &Store{products: products, categories: categories, byID: byID}, nil
}

var (
	defaultStore *Store
	defaultErr   error
	defaultOnce  sync.Once
)

// Init builds the default store from the static seed. Safe to call
// more than once; later calls return the first result.
func Init() error {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = NewStore(seedProducts, seedCategories)
	})
	return defaultErr
}

// Default returns the seeded catalog store. The seed is compile-time
// data, so a validation failure here is a programming error.
func Default() *Store {
	if err := Init(); err != nil {
		panic(fmt.Sprintf("catalog seed invalid: %v", err))
	}
	return defaultStore
}

// ─────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────

// GetAll returns the full catalog in seed order. Returned products are
// deep copies; mutating them, slice fields included, never touches the
// store.
func (s *Store) GetAll() []models.Product {
	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// GetByID returns the product with the given id.
func (s *Store) GetByID(id int) (models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i].Clone(), nil
}

// GetByKey looks a product up by a raw key as it arrives from an
// external caller (path parameter, form value). The key is coerced to
// an integer before comparison; anything non-numeric is not found.
func (s *Store) GetByKey(raw string) (models.Product, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return models.Product{}, ErrProductNotFound
	}
	return s.GetByID(id)
}

// GetFeatured returns the featured subset in catalog order.
func (s *Store) GetFeatured() []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out
}

// GetByCategory returns products whose category equals the requested
// value, preserving catalog order.
func (s *Store) GetByCategory(category string) []models.Product {
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Categories returns the fixed navigation categories.
func (s *Store) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	for i, cat := range s.categories {
		out[i] = cat.Clone()
	}
	return out
}

// GetCategoryByID returns the category with the given id.
func (s *Store) GetCategoryByID(id string) (models.Category, error) {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat.Clone(), nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// ─────────────────────────────────────────────────────────────
// Filter metadata inputs
// ─────────────────────────────────────────────────────────────

// PriceBounds returns the lowest and highest catalog price. An empty
// catalog yields (0, 0).
func (s *Store) PriceBounds() (min, max float64) {
	for i, p := range s.products {
		if i == 0 || p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// AllSizes returns every size carried by at least one product, in
// first-seen catalog order.
func (s *Store) AllSizes() []string {
	return collectDistinct(s.products, func(p models.Product) []string { return p.Sizes })
}

// AllColors returns every colour carried by at least one product, in
// first-seen catalog order.
func (s *Store) AllColors() []string {
	return collectDistinct(s.products, func(p models.Product) []string { return p.Colors })
}

// AvailabilityCounts returns how many products are in and out of stock.
func (s *Store) AvailabilityCounts() (inStock, outOfStock int) {
	for _, p := range s.products {
		if p.InStock {
			inStock++
		} else {
			outOfStock++
		}
	}
	return inStock, outOfStock
}

func collectDistinct(products []models.Product, field func(models.Product) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		for _, v := range field(p) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
