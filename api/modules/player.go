package modules

import (
	"riftstats/api/cache"
	"riftstats/api/handlers"
	aiservice "riftstats/api/services/ai"
	statsservice "riftstats/api/services/stats"
	"riftstats/pkg/config"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	payloadCache := cache.NewPayloadCache(deps.Redis)

	// Initialize the stats service and the insight relay.
	statsDeps := &statsservice.StatsServiceDeps{
		Logger:       deps.Logger,
		MemCache:     deps.MemCache,
		PayloadCache: payloadCache,
		Thresholds: statsservice.Thresholds{
			VisionAverage:             config.Thresholds.VisionAverage,
			DeathsAverage:             config.Thresholds.DeathsAverage,
			WinRate:                   config.Thresholds.WinRate,
			DamagePerMinute:           config.Thresholds.DamagePerMinute,
			CsAverage:                 config.Thresholds.CsAverage,
			KillParticipation:         config.Thresholds.KillParticipation,
			KillParticipationMinGames: config.Thresholds.KillParticipationMinGames,
			RecentWinRateDrop:         config.Thresholds.RecentWinRateDrop,
		},
	}
	statsService := statsservice.NewStatsService(statsDeps)

	insightDeps := &aiservice.InsightServiceDeps{
		Endpoint: config.Insights.Endpoint,
		Timeout:  config.Insights.Timeout,
	}
	insightService := aiservice.NewInsightService(insightDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		StatsService:   statsService,
		InsightService: insightService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
