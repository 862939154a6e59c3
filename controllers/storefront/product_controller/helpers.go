package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Modave-Commerce/modave-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterConfig reads the listing page's filter state from query
// params. Unknown or malformed values fall back to "not filtered".
func parseFilterConfig(c *gin.Context) models.FilterConfig {
	cfg := models.FilterConfig{
		Category: c.Query("category"),
		Size:     c.Query("size"),
		Color:    c.Query("color"),
	}

	if v := c.Query("inStock"); v != "" {
		inStock, _ := strconv.ParseBool(v)
		cfg.InStockOnly = inStock
	}

	// Bucket form first ("50-100", "300+"), explicit bounds as fallback.
	if pr, err := models.ParsePriceRange(c.Query("priceRange")); err == nil && pr != nil {
		cfg.PriceRange = pr
	} else if min := c.Query("minPrice"); min != "" || c.Query("maxPrice") != "" {
		pr := &models.PriceRange{}
		if f, err := strconv.ParseFloat(min, 64); err == nil {
			pr.Min = f
		}
		if f, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
			pr.Max = &f
		}
		cfg.PriceRange = pr
	}

	return cfg
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices one page out of the full result set.
func paginate(products []models.Product, page, limit int) ([]models.Product, *models.Pagination) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
