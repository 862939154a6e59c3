package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Remove every line from the session cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	cart := sessionCart(c)
	cart.Clear()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartResponse(cart)))
}
