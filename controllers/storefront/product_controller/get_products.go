package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
	"github.com/Modave-Commerce/modave-storefront-backend/services"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve catalog products with optional category, price range, size, colour, and availability filters, sorted and paginated.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category (women | men | accessories | unisex)"
// @Param priceRange query string false "Price bucket (e.g. 50-100, 300+)"
// @Param minPrice query number false "Minimum price (ignored when priceRange is set)"
// @Param maxPrice query number false "Maximum price (ignored when priceRange is set)"
// @Param size query string false "Size (exact match, e.g. M)"
// @Param color query string false "Colour (case-insensitive substring)"
// @Param inStock query bool false "In-stock products only"
// @Param sortBy query string false "Sort key (featured | price-asc | price-desc | rating | name-asc | newest)" default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	cfg := parseFilterConfig(c)
	sortKey := models.ParseSortKey(c.DefaultQuery("sortBy", string(models.SortFeatured)))

	result := services.Apply(catalog.Default().GetAll(), cfg, sortKey)

	page, limit := parsePagination(c)
	pageItems, meta := paginate(result, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", pageItems, meta))
}
