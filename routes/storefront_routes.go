package routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/Modave-Commerce/modave-storefront-backend/controllers/storefront/category_controller"
	store_filter "github.com/Modave-Commerce/modave-storefront-backend/controllers/storefront/filter_controller"
	store_product "github.com/Modave-Commerce/modave-storefront-backend/controllers/storefront/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts) // List with filters

		products.GET("/featured", store_product.GetFeaturedProducts) // Home page subset
		products.GET("/:id", store_product.GetProductByID)           // Single product
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)       // List all
		categories.GET("/:id", store_category.GetCategoryByID) // Single category + products
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
