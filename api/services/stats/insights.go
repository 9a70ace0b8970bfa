package statsservice

import (
	"riftstats/api/dto"
	"sort"
)

const (
	// Minimum games on a champion before it's win rate means anything.
	championInsightMinGames = 5
	// Minimum games in a role before it qualifies for best/worst.
	roleInsightMinGames = 3
	// How many champions land on each of the strongest/weakest lists.
	championInsightCount = 3

	unknownRole = "UNKNOWN"
)

// Thresholds are the tuned policy values driving the improvement-area
// flags. They are configuration, not invariants.
type Thresholds struct {
	VisionAverage             float64
	DeathsAverage             float64
	WinRate                   float64
	DamagePerMinute           float64
	CsAverage                 float64
	KillParticipation         float64
	KillParticipationMinGames int
	RecentWinRateDrop         float64
}

// DefaultThresholds returns the product-tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VisionAverage:             20,
		DeathsAverage:             6,
		WinRate:                   50,
		DamagePerMinute:           400,
		CsAverage:                 150,
		KillParticipation:         50,
		KillParticipationMinGames: 10,
		RecentWinRateDrop:         10,
	}
}

// SynthesizeInsights derives the heuristics over the outputs of the other
// pipeline stages.
func SynthesizeInsights(stats *dto.MatchStats, mastery *dto.ChampionMastery, recent []dto.RecentMatch, thresholds Thresholds) *dto.Insights {
	insights := &dto.Insights{
		StrongestChampions: []dto.ChampionInsight{},
		WeakestChampions:   []dto.ChampionInsight{},
		BestRole:           dto.RoleInsight{Role: unknownRole},
		WorstRole:          dto.RoleInsight{Role: unknownRole},
		ImprovementAreas:   []string{},
	}

	insights.StrongestChampions, insights.WeakestChampions = championInsights(mastery)
	insights.BestRole, insights.WorstRole = roleInsights(recent)
	insights.PeakPerformance = peakPerformance(recent)
	insights.ImprovementAreas = improvementAreas(stats, thresholds)
	insights.TierBuckets = TierBuckets(mastery)

	return insights
}

// championInsights ranks the champions with enough games by win rate.
// The top three are the strongest, the bottom three (reversed, so worst
// first) are the weakest.
func championInsights(mastery *dto.ChampionMastery) ([]dto.ChampionInsight, []dto.ChampionInsight) {
	strongest := []dto.ChampionInsight{}
	weakest := []dto.ChampionInsight{}

	if mastery == nil {
		return strongest, weakest
	}

	qualified := []dto.ChampionInsight{}
	for _, champion := range mastery.TopChampions {
		if champion.Games < championInsightMinGames {
			continue
		}
		qualified = append(qualified, dto.ChampionInsight{
			ChampionId:   champion.ChampionId,
			ChampionName: champion.ChampionName,
			Games:        champion.Games,
			WinRate:      champion.WinRate,
		})
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].WinRate > qualified[j].WinRate
	})

	for i := 0; i < len(qualified) && i < championInsightCount; i++ {
		strongest = append(strongest, qualified[i])
	}

	for i := len(qualified) - 1; i >= 0 && len(weakest) < championInsightCount; i-- {
		weakest = append(weakest, qualified[i])
	}

	return strongest, weakest
}

// roleInsights groups the recent matches by role and ranks the qualifying
// roles by win rate. The worst role needs at least two qualifying roles to
// be meaningful.
func roleInsights(recent []dto.RecentMatch) (dto.RoleInsight, dto.RoleInsight) {
	best := dto.RoleInsight{Role: unknownRole}
	worst := dto.RoleInsight{Role: unknownRole}

	type roleCount struct {
		games int
		wins  int
	}
	byRole := make(map[string]*roleCount)
	for _, match := range recent {
		if match.Role == "" {
			continue
		}
		count, exists := byRole[match.Role]
		if !exists {
			count = &roleCount{}
			byRole[match.Role] = count
		}
		count.games++
		if match.Win {
			count.wins++
		}
	}

	qualified := []dto.RoleInsight{}
	for role, count := range byRole {
		if count.games < roleInsightMinGames {
			continue
		}
		qualified = append(qualified, dto.RoleInsight{
			Role:    role,
			Games:   count.games,
			WinRate: round1(float64(count.wins) / float64(count.games) * 100),
		})
	}

	// Map iteration order is random, tie-break on the role name for
	// deterministic output.
	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].WinRate != qualified[j].WinRate {
			return qualified[i].WinRate > qualified[j].WinRate
		}
		return qualified[i].Role < qualified[j].Role
	})

	if len(qualified) > 0 {
		best = qualified[0]
	}
	if len(qualified) > 1 {
		worst = qualified[len(qualified)-1]
	}

	return best, worst
}

// peakPerformance finds the single recent match maximizing KDA x damage.
// The comparison runs on the raw scores, only the reported one is rounded.
func peakPerformance(recent []dto.RecentMatch) *dto.PeakMatch {
	var peak *dto.PeakMatch
	var bestScore float64

	for _, match := range recent {
		score := match.KDA * (float64(match.Damage) / 1000)
		if peak == nil || score > bestScore {
			bestScore = score
			peak = &dto.PeakMatch{
				MatchId: match.MatchId,
				Date:    match.Date,
				KDA:     match.KDA,
				Damage:  match.Damage,
				Score:   round1(score),
			}
		}
	}

	return peak
}

// improvementAreas appends a named area for every crossed threshold.
// The flags are independent, several can fire at once.
func improvementAreas(stats *dto.MatchStats, thresholds Thresholds) []string {
	areas := []string{}

	if stats == nil || stats.TotalGames == 0 {
		return areas
	}

	if stats.AverageVision < thresholds.VisionAverage {
		areas = append(areas, "VISION_CONTROL")
	}
	if stats.AverageDeaths > thresholds.DeathsAverage {
		areas = append(areas, "DEATHS")
	}
	if stats.WinRate < thresholds.WinRate {
		areas = append(areas, "WIN_RATE")
	}
	if stats.DamagePerMinute < thresholds.DamagePerMinute {
		areas = append(areas, "DAMAGE_OUTPUT")
	}
	if stats.AverageCs < thresholds.CsAverage {
		areas = append(areas, "CS_FARMING")
	}
	if stats.KillParticipation < thresholds.KillParticipation && stats.TotalGames >= thresholds.KillParticipationMinGames {
		areas = append(areas, "KILL_PARTICIPATION")
	}
	if stats.WinRate-stats.RecentWinRate > thresholds.RecentWinRateDrop {
		areas = append(areas, "RECENT_FORM")
	}

	return areas
}
