// Package handler provides HTTP handlers that are not tied to a feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is a liveness probe endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
