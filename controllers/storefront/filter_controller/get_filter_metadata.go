package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns categories, price range and buckets, sizes, colours, and availability counts for the listing page sidebar.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	store := catalog.Default()

	minPrice, maxPrice := store.PriceBounds()
	inStock, outOfStock := store.AvailabilityCounts()

	metadata := models.FilterMetadata{
		Categories:   store.Categories(),
		PriceRange:   &models.PriceRangeData{Min: minPrice, Max: maxPrice},
		PriceBuckets: models.PriceBuckets(),
		Sizes:        store.AllSizes(),
		Colors:       store.AllColors(),
		Availability: &models.AvailabilityData{InStock: inStock, OutOfStock: outOfStock},
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
