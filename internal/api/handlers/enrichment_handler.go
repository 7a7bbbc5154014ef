package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/services"
)

type EnrichmentHandler struct {
	enrichmentService *services.EnrichmentService
}

func NewEnrichmentHandler(enrichmentService *services.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{enrichmentService: enrichmentService}
}

// coordinateQuery parses lat/lon query parameters into a coordinate.
func coordinateQuery(c *gin.Context, latKey, lonKey string) (entities.Coordinate, bool) {
	lat, latErr := strconv.ParseFloat(c.Query(latKey), 64)
	lon, lonErr := strconv.ParseFloat(c.Query(lonKey), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": latKey + " and " + lonKey + " must be valid coordinates",
		})
		return entities.Coordinate{}, false
	}
	return entities.NewCoordinate(lat, lon), true
}

// Enrich handles GET /api/enrichment
func (h *EnrichmentHandler) Enrich(c *gin.Context) {
	dest, ok := coordinateQuery(c, "lat", "lon")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.enrichmentService.Enrich(c.Request.Context(), dest))
}
