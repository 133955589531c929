package handler

import (
	"net/http"
	"time"

	"lightbnb/internal/model"
	"lightbnb/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles property-related HTTP requests
type PropertyHandler struct {
	rentalService *service.RentalService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(rentalService *service.RentalService) *PropertyHandler {
	return &PropertyHandler{
		rentalService: rentalService,
	}
}

// Search handles GET /api/v1/properties
func (h *PropertyHandler) Search(c *gin.Context) {
	startTime := time.Now()

	var req model.PropertySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	filters, err := req.Filters()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	properties, limit, err := h.rentalService.SearchProperties(c.Request.Context(), &filters, req.Limit)
	if err != nil {
		respondError(c, "Property search failed", err)
		return
	}

	c.JSON(http.StatusOK, model.PropertySearchResponse{
		Properties: properties,
		Count:      len(properties),
		Limit:      limit,
		Took:       time.Since(startTime).Milliseconds(),
	})
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req model.NewProperty
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	property, err := h.rentalService.AddProperty(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to add property", err)
		return
	}

	c.JSON(http.StatusCreated, property)
}
