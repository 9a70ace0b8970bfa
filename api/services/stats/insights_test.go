package statsservice

import (
	"riftstats/api/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func champPerf(id int, name string, games int, winRate float64) dto.ChampionPerformance {
	return dto.ChampionPerformance{
		ChampionId:   id,
		ChampionName: name,
		Games:        games,
		WinRate:      winRate,
	}
}

// Champions need five games before their win rate qualifies.
func TestChampionInsights(t *testing.T) {
	mastery := &dto.ChampionMastery{
		TopChampions: []dto.ChampionPerformance{
			champPerf(1, "Annie", 10, 70),
			champPerf(2, "Olaf", 8, 40),
			champPerf(3, "Galio", 6, 55),
			champPerf(4, "TwistedFate", 9, 62),
			champPerf(5, "XinZhao", 2, 100), // Too few games.
		},
	}

	strongest, weakest := championInsights(mastery)

	assert.Len(t, strongest, 3)
	assert.Equal(t, "Annie", strongest[0].ChampionName)
	assert.Equal(t, "TwistedFate", strongest[1].ChampionName)
	assert.Equal(t, "Galio", strongest[2].ChampionName)

	// Weakest come back worst first.
	assert.Len(t, weakest, 3)
	assert.Equal(t, "Olaf", weakest[0].ChampionName)
	assert.Equal(t, "Galio", weakest[1].ChampionName)
	assert.Equal(t, "TwistedFate", weakest[2].ChampionName)
}

func TestChampionInsightsEmpty(t *testing.T) {
	strongest, weakest := championInsights(&dto.ChampionMastery{})

	assert.Empty(t, strongest)
	assert.Empty(t, weakest)
}

// Roles qualify with three games; the worst needs a second qualifying role.
func TestRoleInsights(t *testing.T) {
	recent := []dto.RecentMatch{}
	addRole := func(role string, wins, losses int) {
		for i := 0; i < wins; i++ {
			recent = append(recent, dto.RecentMatch{Role: role, Win: true})
		}
		for i := 0; i < losses; i++ {
			recent = append(recent, dto.RecentMatch{Role: role, Win: false})
		}
	}

	addRole("MIDDLE", 4, 1)  // 80%
	addRole("JUNGLE", 1, 3)  // 25%
	addRole("TOP", 1, 1)     // Too few games.
	addRole("", 5, 0)        // Empty roles never qualify.

	best, worst := roleInsights(recent)

	assert.Equal(t, "MIDDLE", best.Role)
	assert.Equal(t, 80.0, best.WinRate)
	assert.Equal(t, "JUNGLE", worst.Role)
	assert.Equal(t, 25.0, worst.WinRate)
}

func TestRoleInsightsSingleQualifyingRole(t *testing.T) {
	recent := []dto.RecentMatch{
		{Role: "MIDDLE", Win: true},
		{Role: "MIDDLE", Win: true},
		{Role: "MIDDLE", Win: false},
	}

	best, worst := roleInsights(recent)

	assert.Equal(t, "MIDDLE", best.Role)
	// A single qualifying role leaves the worst unknown.
	assert.Equal(t, "UNKNOWN", worst.Role)
}

func TestRoleInsightsNoQualifyingRole(t *testing.T) {
	best, worst := roleInsights(nil)

	assert.Equal(t, "UNKNOWN", best.Role)
	assert.Equal(t, "UNKNOWN", worst.Role)
}

// The peak match maximizes KDA x damage/1000.
func TestPeakPerformance(t *testing.T) {
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	recent := []dto.RecentMatch{
		{MatchId: "NA1_1", KDA: 3.0, Damage: 20000, Date: date},
		{MatchId: "NA1_2", KDA: 8.0, Damage: 30000, Date: date},
		{MatchId: "NA1_3", KDA: 12.0, Damage: 10000, Date: date},
	}

	peak := peakPerformance(recent)

	assert.NotNil(t, peak)
	assert.Equal(t, "NA1_2", peak.MatchId)
	assert.Equal(t, 240.0, peak.Score)
}

func TestPeakPerformanceEmpty(t *testing.T) {
	assert.Nil(t, peakPerformance(nil))
}

// Scores that only differ below the rounding granularity still compare
// on their raw values, so the true maximum keeps the peak.
func TestPeakPerformanceNearTiedScores(t *testing.T) {
	recent := []dto.RecentMatch{
		// 2.0 * 5020/1000 = 10.04, reported as 10.0.
		{MatchId: "NA1_1", KDA: 2.0, Damage: 5020},
		// 2.0 * 5010/1000 = 10.02, also reported as 10.0.
		{MatchId: "NA1_2", KDA: 2.0, Damage: 5010},
	}

	peak := peakPerformance(recent)

	assert.Equal(t, "NA1_1", peak.MatchId)
	assert.Equal(t, 10.0, peak.Score)
}

// Every threshold is independent, several areas can fire at once.
func TestImprovementAreas(t *testing.T) {
	thresholds := DefaultThresholds()

	healthy := &dto.MatchStats{
		TotalGames:        20,
		WinRate:           55,
		RecentWinRate:     54,
		AverageVision:     30,
		AverageDeaths:     4,
		DamagePerMinute:   600,
		AverageCs:         180,
		KillParticipation: 60,
	}

	tests := []struct {
		name     string
		mutate   func(stats *dto.MatchStats)
		expected []string
	}{
		{
			name:     "healthy profile",
			mutate:   func(stats *dto.MatchStats) {},
			expected: []string{},
		},
		{
			name:     "low vision",
			mutate:   func(stats *dto.MatchStats) { stats.AverageVision = 15 },
			expected: []string{"VISION_CONTROL"},
		},
		{
			name:     "too many deaths",
			mutate:   func(stats *dto.MatchStats) { stats.AverageDeaths = 7.5 },
			expected: []string{"DEATHS"},
		},
		{
			name:     "losing record",
			mutate:   func(stats *dto.MatchStats) { stats.WinRate = 45; stats.RecentWinRate = 45 },
			expected: []string{"WIN_RATE"},
		},
		{
			name:     "low damage",
			mutate:   func(stats *dto.MatchStats) { stats.DamagePerMinute = 300 },
			expected: []string{"DAMAGE_OUTPUT"},
		},
		{
			name:     "low cs",
			mutate:   func(stats *dto.MatchStats) { stats.AverageCs = 120 },
			expected: []string{"CS_FARMING"},
		},
		{
			name:     "low kill participation",
			mutate:   func(stats *dto.MatchStats) { stats.KillParticipation = 40 },
			expected: []string{"KILL_PARTICIPATION"},
		},
		{
			name:     "recent slump",
			mutate:   func(stats *dto.MatchStats) { stats.RecentWinRate = 40 },
			expected: []string{"RECENT_FORM"},
		},
		{
			name: "several at once",
			mutate: func(stats *dto.MatchStats) {
				stats.AverageVision = 10
				stats.AverageDeaths = 9
				stats.AverageCs = 90
			},
			expected: []string{"VISION_CONTROL", "DEATHS", "CS_FARMING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := *healthy
			tt.mutate(&stats)

			assert.Equal(t, tt.expected, improvementAreas(&stats, thresholds))
		})
	}
}

// Kill participation only flags with enough games behind the reading.
func TestImprovementAreasKillParticipationMinGames(t *testing.T) {
	thresholds := DefaultThresholds()

	stats := &dto.MatchStats{
		TotalGames:        5,
		WinRate:           60,
		RecentWinRate:     60,
		AverageVision:     30,
		AverageDeaths:     3,
		DamagePerMinute:   500,
		AverageCs:         180,
		KillParticipation: 30,
	}

	assert.Empty(t, improvementAreas(stats, thresholds))

	stats.TotalGames = 10
	assert.Equal(t, []string{"KILL_PARTICIPATION"}, improvementAreas(stats, thresholds))
}

// Without games there is nothing to flag.
func TestImprovementAreasZeroGames(t *testing.T) {
	assert.Empty(t, improvementAreas(&dto.MatchStats{}, DefaultThresholds()))
	assert.Empty(t, improvementAreas(nil, DefaultThresholds()))
}

// SynthesizeInsights wires every derivation together.
func TestSynthesizeInsights(t *testing.T) {
	stats := &dto.MatchStats{
		TotalGames:        12,
		WinRate:           58.3,
		RecentWinRate:     60,
		AverageVision:     25,
		AverageDeaths:     4,
		DamagePerMinute:   500,
		AverageCs:         170,
		KillParticipation: 55,
	}
	mastery := &dto.ChampionMastery{
		TopChampions: []dto.ChampionPerformance{
			champPerf(1, "Annie", 10, 70),
		},
	}
	recent := []dto.RecentMatch{
		{Role: "MIDDLE", Win: true, KDA: 4, Damage: 20000},
		{Role: "MIDDLE", Win: true, KDA: 3, Damage: 15000},
		{Role: "MIDDLE", Win: false, KDA: 1, Damage: 9000},
	}

	insights := SynthesizeInsights(stats, mastery, recent, DefaultThresholds())

	assert.Len(t, insights.StrongestChampions, 1)
	assert.Equal(t, "MIDDLE", insights.BestRole.Role)
	assert.Equal(t, "UNKNOWN", insights.WorstRole.Role)
	assert.NotNil(t, insights.PeakPerformance)
	assert.Empty(t, insights.ImprovementAreas)
	assert.NotNil(t, insights.TierBuckets)
}
