package models

// ═══════════════════════════════════════════════════════════
// Cart Models
// ═══════════════════════════════════════════════════════════

// CartLineItem is a product snapshot plus the shopper's selection.
// Line identity is (product id, selected size, selected color); two
// additions with the same key merge by summing quantity.
type CartLineItem struct {
	Product
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Quantity      int    `json:"quantity"`
}

// Matches reports whether the line carries the given composite key.
func (li CartLineItem) Matches(productID int, size, color string) bool {
	return li.ID == productID && li.SelectedSize == size && li.SelectedColor == color
}

// LineTotal is the unrounded extended price of the line.
func (li CartLineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// CartSummary carries the checkout-summary figures derived from cart
// state. All amounts are unrounded; rounding happens only at
// presentation time.
type CartSummary struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
	// FreeShippingGap is how much more the shopper must spend to reach
	// free shipping, zero once the threshold is met.
	FreeShippingGap float64
	ItemCount       int
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID     int    `json:"product_id" binding:"required,gt=0" example:"1"`
	SelectedSize  string `json:"selected_size" example:"M"`
	SelectedColor string `json:"selected_color" example:"Black"`
	// Quantity defaults to 1 when omitted; zero or negative values are rejected.
	Quantity int `json:"quantity" binding:"omitempty,gt=0" example:"1"`
}

type UpdateCartItemRequest struct {
	ProductID     int    `json:"product_id" binding:"required,gt=0" example:"1"`
	SelectedSize  string `json:"selected_size" example:"M"`
	SelectedColor string `json:"selected_color" example:"Black"`
	// Quantity <= 0 removes the line.
	Quantity int `json:"quantity" example:"2"`
}

type RemoveCartItemRequest struct {
	ProductID     int    `json:"product_id" binding:"required,gt=0" example:"1"`
	SelectedSize  string `json:"selected_size" example:"M"`
	SelectedColor string `json:"selected_color" example:"Black"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type CartResponse struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"item_count"`
}

// CartSummaryResponse is the presentation form of CartSummary with
// amounts rounded to currency precision.
type CartSummaryResponse struct {
	Subtotal        float64 `json:"subtotal"`
	Shipping        float64 `json:"shipping"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	FreeShippingGap float64 `json:"free_shipping_gap"`
	ItemCount       int     `json:"item_count"`
}
