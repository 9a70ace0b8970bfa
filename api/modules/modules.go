package modules

import (
	"riftstats/api/cache"
	"riftstats/api/handlers"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	PlayerHandler *handlers.PlayerHandler
	HealthHandler *handlers.HealthHandler

	memCache *cache.MemCache
}

// ModuleDependencies are the shared resources the handlers build on.
type ModuleDependencies struct {
	Logger   *logger.NewLogger
	MemCache *cache.MemCache
	Redis    *redis.RedisClient
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	playerHandler := initializePlayerHandler(deps)

	return &Module{
		Router:        router,
		PlayerHandler: playerHandler,
		HealthHandler: handlers.NewHealthHandler(),
		memCache:      deps.MemCache,
	}
}

// Close releases the module resources.
func (m *Module) Close() {
	if m.memCache != nil {
		m.memCache.Close()
	}
}
