package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers the liveness probe.
type HealthHandler struct{}

// NewHealthHandler creates a new instance of the health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth handles the liveness check.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
