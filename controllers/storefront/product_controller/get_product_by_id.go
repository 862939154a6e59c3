package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Get detailed product information by ID. The raw key is coerced to an integer; non-numeric or unknown ids are not found.
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	product, err := catalog.Default().GetByKey(c.Param("id"))
	if err != nil {
		// The storefront sends shoppers back to the listing on a bad
		// id; the API just signals not-found.
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
