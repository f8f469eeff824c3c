package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"election-dashboard-go/internal/handler"
	"election-dashboard-go/internal/middleware"
	"election-dashboard-go/internal/party"
	"election-dashboard-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to database
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize services
	partyService := party.NewPartyService(db)

	// Initialize handlers
	partyHandler := handler.NewPartyHandler(partyService, cfg.BlankCountsAsZero)

	// Set up Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// CORS for the dashboard frontend
	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		// Query operations
		api.GET("/parties", partyHandler.GetParties)
		api.GET("/parties/breakdown", partyHandler.GetPartiesWithBreakdown)
		api.GET("/parties/top", partyHandler.GetTopParties)
		api.GET("/regions", partyHandler.GetRegions)
		api.GET("/regions/:code/top", partyHandler.GetTopPartiesByRegion)

		// Mutation and lookup operations
		api.PUT("/parties/:id", partyHandler.UpdateParty)
		api.PUT("/parties/:id/regions/:code", partyHandler.UpdatePartyRegion)
		api.GET("/parties/:id/regions/:code", partyHandler.LoadPartyRegion)
	}

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
