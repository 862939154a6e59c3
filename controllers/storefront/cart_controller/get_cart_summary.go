package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetCartSummary godoc
// @Summary Get the checkout summary
// @Description Derive subtotal, shipping, tax, and total from the session cart. Shipping is waived above the free shipping threshold; amounts are rounded for display.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartSummaryResponse}
// @Router /cart/summary [get]
func GetCartSummary(c *gin.Context) {
	cart := sessionCart(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart summary fetched", summaryResponse(cart.Summary())))
}
