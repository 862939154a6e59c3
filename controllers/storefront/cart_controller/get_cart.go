package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Retrieve the current session's cart lines and total item count.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	cart := sessionCart(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartResponse(cart)))
}
