// @title Modave Storefront API
// @version 1.0
// @description Modave Storefront Backend API Documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Modave-Commerce/modave-storefront-backend/catalog"
	"github.com/Modave-Commerce/modave-storefront-backend/config"
	"github.com/Modave-Commerce/modave-storefront-backend/middleware"
	"github.com/Modave-Commerce/modave-storefront-backend/routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Validate and load the static catalog
	if err := catalog.Init(); err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	log.Println("✅ Catalog loaded and validated")

	// Redis connection (rate limiter)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	routes.SetupStorefrontRoutes(api)
	routes.SetupCartRoutes(api)
	log.Println("✅ Storefront routes registered")

	addr := config.Port()
	fmt.Println("🚀 Server is running on http://localhost" + addr)
	router.Run(addr)
}
