package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetCategoryByID godoc
// @Summary Get a category with its products
// @Description Get one navigation category plus the catalog products belonging to it, in catalog order.
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID (women | men | accessories | unisex)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	store := catalog.Default()

	category, err := store.GetCategoryByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	payload := gin.H{
		"category": category,
		"products": store.GetByCategory(category.ID),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", payload))
}
