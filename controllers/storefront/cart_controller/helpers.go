package cart_controller

import (
	"github.com/gin-gonic/gin"

	cart_cache "github.com/Modave-Commerce/modave-storefront-backend/cache"
	"github.com/Modave-Commerce/modave-storefront-backend/middleware"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
	"github.com/Modave-Commerce/modave-storefront-backend/services"
	"github.com/Modave-Commerce/modave-storefront-backend/utils"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// sessionCart resolves the shopper's cart from the session id set by
// the CartSession middleware, creating an empty cart on first use.
func sessionCart(c *gin.Context) *services.Cart {
	sid := c.GetString(middleware.SessionKey)
	return cart_cache.GetOrCreate(sid)
}

func cartResponse(cart *services.Cart) models.CartResponse {
	return models.CartResponse{
		Items:     cart.Items(),
		ItemCount: cart.ItemCount(),
	}
}

// summaryResponse rounds the derived figures to currency precision.
// This is the only place rounding happens.
func summaryResponse(summary models.CartSummary) models.CartSummaryResponse {
	return models.CartSummaryResponse{
		Subtotal:        utils.Round2(summary.Subtotal),
		Shipping:        utils.Round2(summary.Shipping),
		Tax:             utils.Round2(summary.Tax),
		Total:           utils.Round2(summary.Total),
		FreeShippingGap: utils.Round2(summary.FreeShippingGap),
		ItemCount:       summary.ItemCount,
	}
}
