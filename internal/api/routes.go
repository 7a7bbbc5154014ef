package api

import (
	"github.com/gin-gonic/gin"

	"github.com/harshekka/smart-trip-planner/internal/api/handlers"
)

type Router struct {
	searchHandler     *handlers.SearchHandler
	enrichmentHandler *handlers.EnrichmentHandler
	inventoryHandler  *handlers.InventoryHandler
}

func NewRouter(
	searchHandler *handlers.SearchHandler,
	enrichmentHandler *handlers.EnrichmentHandler,
	inventoryHandler *handlers.InventoryHandler,
) *Router {
	return &Router{
		searchHandler:     searchHandler,
		enrichmentHandler: enrichmentHandler,
		inventoryHandler:  inventoryHandler,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		// Core trip search
		api.POST("/search", r.searchHandler.Search)
		api.GET("/search/active", r.searchHandler.Active)

		// Destination context
		api.GET("/enrichment", r.enrichmentHandler.Enrich)

		// Bookable inventory
		api.GET("/flights", r.inventoryHandler.Flights)
		api.GET("/trains", r.inventoryHandler.Trains)
	}
}
