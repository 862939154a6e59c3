package services

import (
	"errors"
	"sync"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// Checkout constants. Tax applies to the unrounded subtotal.
const (
	ShippingFlatRate      = 9.99
	FreeShippingThreshold = 100.0
	TaxRate               = 0.08
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrLineItemNotFound = errors.New("cart line item not found")
)

// Cart aggregates a shopper's line items for one session. Lines are
// kept in insertion order and identified by the composite key
// (product id, selected size, selected color). A mutex serializes
// mutation since Gin handlers run concurrently.
type Cart struct {
	mu    sync.Mutex
	items []models.CartLineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts quantity units of the selection into the cart. An
// existing line with the same composite key absorbs the quantity
// instead of creating a duplicate. Size and colour are not validated
// against the product's own lists; a bad selection is cosmetic only.
func (c *Cart) AddItem(product models.Product, size, color string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Matches(product.ID, size, color) {
			c.items[i].Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, models.CartLineItem{
		Product:       product,
		SelectedSize:  size,
		SelectedColor: color,
		Quantity:      quantity,
	})
	return nil
}

// UpdateQuantity sets the quantity of the line with the given
// composite key. A quantity of zero or less removes the line rather
// than clamping, so present lines always carry quantity >= 1.
func (c *Cart) UpdateQuantity(productID int, size, color string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if !c.items[i].Matches(productID, size, color) {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return nil
	}
	return ErrLineItemNotFound
}

// RemoveItem deletes the line with the given composite key.
func (c *Cart) RemoveItem(productID int, size, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Matches(productID, size, color) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrLineItemNotFound
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the cart lines in insertion order. Line
// product data is deep-copied so callers cannot reach cart state
// through slice fields.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLineItem, len(c.items))
	for i, li := range c.items {
		li.Product = li.Product.Clone()
		out[i] = li
	}
	return out
}

// Subtotal is the unrounded sum of price * quantity over all lines.
// Currency rounding happens only at presentation time.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() float64 {
	var total float64
	for _, li := range c.items {
		total += li.LineTotal()
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCountLocked()
}

func (c *Cart) itemCountLocked() int {
	var count int
	for _, li := range c.items {
		count += li.Quantity
	}
	return count
}

// Summary derives the checkout figures from the current cart state.
// Shipping is a flat rate waived once the subtotal exceeds the free
// shipping threshold; tax is computed on the unrounded subtotal.
func (c *Cart) Summary() models.CartSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := c.subtotalLocked()

	shipping := ShippingFlatRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	gap := FreeShippingThreshold - subtotal
	if gap < 0 {
		gap = 0
	}

	tax := subtotal * TaxRate

	return models.CartSummary{
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           subtotal + shipping + tax,
		FreeShippingGap: gap,
		ItemCount:       c.itemCountLocked(),
	}
}
