package routes

import (
	"riftstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.HealthHandler:
			r.registerHealthHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	player := r.api.Group("/player")
	{
		player.GET("/:region/:gameName/:gameTag/stats", handler.GetPlayerStats)
		player.GET("/:region/:gameName/:gameTag/insights", handler.GetPlayerInsights)
	}
}

// Register the health handler.
func (r *Router) registerHealthHandler(handler *handlers.HealthHandler) {
	r.api.GET("/health", handler.GetHealth)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
