package routes

import (
	"github.com/gin-gonic/gin"

	store_cart "github.com/Modave-Commerce/modave-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Modave-Commerce/modave-storefront-backend/middleware"
)

func SetupCartRoutes(router *gin.RouterGroup) {
	// Every cart route needs a session; the middleware issues the
	// cookie on first contact.
	cart := router.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)

		cart.POST("/items", store_cart.AddItem)
		cart.PATCH("/items", store_cart.UpdateItem)
		cart.DELETE("/items", store_cart.RemoveItem)

		cart.GET("/summary", store_cart.GetCartSummary)
	}
}
