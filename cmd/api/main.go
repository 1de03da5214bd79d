package main

import (
	"fmt"
	"log"
	"os"

	"electricity-forecast/internal/api/handlers"
	"electricity-forecast/internal/api/middleware"
	"electricity-forecast/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	feedBaseURL := os.Getenv("FEED_BASE_URL")

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	client := feed.NewClient(feedBaseURL)
	forecastHandler := handlers.NewForecastHandler(client)
	regionsHandler := handlers.NewRegionsHandler(client)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/forecast", forecastHandler.GetForecast)
		api.GET("/regions", regionsHandler.ListRegions)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s (feed: %s)", addr, client.BaseURL)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
