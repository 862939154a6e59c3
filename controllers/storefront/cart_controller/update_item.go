package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// UpdateItem godoc
// @Summary Update a cart line's quantity
// @Description Set the quantity of the line matching the product, size, and colour. A quantity of zero or less removes the line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Line to update"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items [patch]
func UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cart := sessionCart(c)
	if err := cart.UpdateQuantity(req.ProductID, req.SelectedSize, req.SelectedColor, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartResponse(cart)))
}
