package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// RemoveItem godoc
// @Summary Remove a line from the cart
// @Description Delete the line matching the product, size, and colour from the session cart.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items [delete]
func RemoveItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cart := sessionCart(c)
	if err := cart.RemoveItem(req.ProductID, req.SelectedSize, req.SelectedColor); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cartResponse(cart)))
}
