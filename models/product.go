package models

// Fixed storefront categories. The catalog never carries anything else.
const (
	CategoryWomen       = "women"
	CategoryMen         = "men"
	CategoryAccessories = "accessories"
	CategoryUnisex      = "unisex"
)

// ═══════════════════════════════════════════════════════════
// Catalog Models
// ═══════════════════════════════════════════════════════════

// Product is an immutable catalog record, seeded once at startup and
// validated at load time. Image always duplicates Images[0].
type Product struct {
	ID            int      `json:"id" validate:"required,gt=0"`
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"required,oneof=women men accessories unisex"`
	Subcategory   string   `json:"subcategory" validate:"required"`
	Image         string   `json:"image" validate:"required,url"`
	Images        []string `json:"images" validate:"required,min=1,dive,required,url"`
	Description   string   `json:"description" validate:"required"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
}

// Clone returns a copy whose slice and pointer fields share no backing
// storage with the receiver, so callers cannot reach the canonical
// catalog records through a returned product.
func (p Product) Clone() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}

// Category groups products for navigation and filtering.
type Category struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Subcategories []string `json:"subcategories" validate:"required,min=1"`
}

// Clone returns a copy with its own Subcategories backing array.
func (c Category) Clone() Category {
	out := c
	out.Subcategories = append([]string(nil), c.Subcategories...)
	return out
}
