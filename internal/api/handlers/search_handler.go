package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/repository"
	"github.com/harshekka/smart-trip-planner/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
	store         repository.ResultStore
}

func NewSearchHandler(searchService *services.SearchService, store repository.ResultStore) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		store:         store,
	}
}

type SearchRequest struct {
	Start       string `json:"start" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Preference  string `json:"preference"`
}

// Search handles POST /api/search. A search that cannot produce real routes
// still returns 200 with a fallback result set; only malformed input is an
// error.
func (h *SearchHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := entities.ParsePreference(req.Preference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.searchService.Search(c.Request.Context(), services.SearchRequest{
		Start:       req.Start,
		Destination: req.Destination,
		Preference:  pref,
	})

	c.JSON(http.StatusOK, result)
}

// Active handles GET /api/search/active
func (h *SearchHandler) Active(c *gin.Context) {
	result, ok := h.store.Active()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no search has completed yet"})
		return
	}
	c.JSON(http.StatusOK, result)
}
