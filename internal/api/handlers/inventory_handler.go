package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshekka/smart-trip-planner/internal/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Flights handles GET /api/flights
func (h *InventoryHandler) Flights(c *gin.Context) {
	origin, ok := coordinateQuery(c, "origin_lat", "origin_lon")
	if !ok {
		return
	}
	dest, ok := coordinateQuery(c, "dest_lat", "dest_lon")
	if !ok {
		return
	}

	offers, err := h.inventoryService.FlightOffers(c.Request.Context(), origin, dest)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInventoryNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "flight lookup is not configured"})
		case errors.Is(err, services.ErrNoNearbyAirport):
			c.JSON(http.StatusNotFound, gin.H{"error": "no airport found near the given locations"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"flights": offers})
}

// Trains handles GET /api/trains
func (h *InventoryHandler) Trains(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to city names are required"})
		return
	}

	offers, err := h.inventoryService.TrainOffers(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInventoryNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "train lookup is not configured"})
		case errors.Is(err, services.ErrUnknownStation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no railway station known for one of the cities"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"trains": offers})
}
