package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// AddItem godoc
// @Summary Add a product to the cart
// @Description Add the selected product, size, and colour to the session cart. An existing line with the same selection absorbs the quantity.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items [post]
func AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, err := catalog.Default().GetByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart := sessionCart(c)
	if err := cart.AddItem(product, req.SelectedSize, req.SelectedColor, quantity); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cartResponse(cart)))
}
