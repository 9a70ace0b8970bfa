package handlers

import (
	"net/http"
	"riftstats/api/filters"
	aiservice "riftstats/api/services/ai"
	statsservice "riftstats/api/services/stats"
	"riftstats/fetcher/regions"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	statsService   *statsservice.StatsService
	insightService *aiservice.InsightService
}

// PlayerHandlerDependencies is the dependency list for the player handler.
type PlayerHandlerDependencies struct {
	StatsService   *statsservice.StatsService
	InsightService *aiservice.InsightService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		statsService:   deps.StatsService,
		insightService: deps.InsightService,
	}
}

// GetPlayerStats handles requests for the assembled player payload.
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	var qp filters.PlayerStatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := c.Params.ByName("region")
	if !regions.Valid(region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	filter := qp.AsFilter(c.Params.ByName("gameName"), c.Params.ByName("gameTag"))

	result, err := h.statsService.GetPlayerSummary(c.Request.Context(), region, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetPlayerInsights assembles the payload and relays the AI summary.
func (h *PlayerHandler) GetPlayerInsights(c *gin.Context) {
	var qp filters.PlayerStatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region := c.Params.ByName("region")
	if !regions.Valid(region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	filter := qp.AsFilter(c.Params.ByName("gameName"), c.Params.ByName("gameTag"))

	payload, err := h.statsService.GetPlayerSummary(c.Request.Context(), region, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.insightService.Summarize(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"summary": summary}})
}
