package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the brand map to the frontend.
type Handler struct {
	brands BrandMap
}

// NewHandler creates a Handler over a loaded brand map.
func NewHandler(brands BrandMap) *Handler {
	return &Handler{brands: brands}
}

// List returns the brand-to-model map as JSON.
//
// GET /api/brands
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.brands)
}
