package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description Retrieve the featured subset of the catalog in catalog order, for promotional placement on the home page.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Featured products fetched successfully"
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	featured := catalog.Default().GetFeatured()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", featured))
}
