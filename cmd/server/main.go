package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harshekka/smart-trip-planner/internal/api"
	"github.com/harshekka/smart-trip-planner/internal/api/handlers"
	"github.com/harshekka/smart-trip-planner/internal/api/middleware"
	"github.com/harshekka/smart-trip-planner/internal/config"
	"github.com/harshekka/smart-trip-planner/internal/providers"
	"github.com/harshekka/smart-trip-planner/internal/repository/memory"
	"github.com/harshekka/smart-trip-planner/internal/services"
)

func main() {
	// Load .env if present; credentials may also come from the real
	// environment.
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize provider clients
	nominatim := providers.NewNominatimClient(cfg.Providers.NominatimURL)
	osrm := providers.NewOSRMClient(cfg.Providers.OSRMURL)
	waqi := providers.NewWAQIClient(cfg.Providers.WAQIURL)
	openaq := providers.NewOpenAQClient(cfg.Providers.OpenAQURL)
	meteo := providers.NewOpenMeteoClient(cfg.Providers.OpenMeteoURL)
	overpass := providers.NewOverpassClient(cfg.Providers.OverpassURL)
	amadeus := providers.NewAmadeusClient(cfg.Providers.AmadeusURL, cfg.Providers.AmadeusKey, cfg.Providers.AmadeusSecret)
	rail := providers.NewRailClient(cfg.Providers.RailURL, cfg.Providers.RailKey, cfg.Providers.RailHost)

	// Initialize repositories
	resultRepo := memory.NewResultRepository()

	// Initialize services
	geocodeService := services.NewGeocodeService(nominatim)
	aqiService := services.NewAirQualityService(waqi, openaq, cfg.Providers.WAQIToken)
	candidateService := services.NewCandidateService(osrm, aqiService)
	searchService := services.NewSearchService(geocodeService, candidateService, resultRepo)
	enrichmentService := services.NewEnrichmentService(amadeus, overpass, meteo, cfg.Search)
	inventoryService := services.NewInventoryService(amadeus, rail, cfg.Search.InventoryLeadDays)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService, resultRepo)
	enrichmentHandler := handlers.NewEnrichmentHandler(enrichmentService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Setup router
	router := api.NewRouter(searchHandler, enrichmentHandler, inventoryHandler)

	// Create Gin engine
	engine := gin.Default()
	engine.Use(cors.Default())
	engine.Use(middleware.RequestID())
	router.Setup(engine)

	// Start server
	log.Printf("Starting Smart Trip Planner server on %s", cfg.Server.Port)
	if err := engine.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
