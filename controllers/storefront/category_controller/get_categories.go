package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetCategories godoc
// @Summary List navigation categories
// @Description Retrieve the fixed storefront categories with their subcategories.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	categories := catalog.Default().Categories()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
