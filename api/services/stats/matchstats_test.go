package statsservice

import (
	matchfetcher "riftstats/fetcher/data/match"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Test that the totals stay consistent with the participant lookups.
func TestExtractMatchStatsTotals(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		wins          []bool
		expectedGames int
		expectedWins  int
	}{
		{
			name:          "all wins",
			wins:          []bool{true, true, true},
			expectedGames: 3,
			expectedWins:  3,
		},
		{
			name:          "mixed results",
			wins:          []bool{true, false, true, false, false},
			expectedGames: 5,
			expectedWins:  2,
		},
		{
			name:          "empty input",
			wins:          []bool{},
			expectedGames: 0,
			expectedWins:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ExtractMatchStats(buildWinLossSequence(now, tt.wins), testPuuid, now)

			assert.Equal(t, tt.expectedGames, stats.TotalGames)
			assert.Equal(t, tt.expectedWins, stats.Wins)
			assert.Equal(t, stats.TotalGames, stats.Wins+stats.Losses)
		})
	}
}

// A 12 match run with 7 wins, 6 of them inside the recent 10.
func TestExtractMatchStatsWinRates(t *testing.T) {
	now := time.Now()

	// Newest first: 6 wins inside the first 10, 1 more at position 10.
	wins := []bool{
		true, true, true, true, true, true, false, false, false, false,
		true, false,
	}

	stats := ExtractMatchStats(buildWinLossSequence(now, wins), testPuuid, now)

	assert.Equal(t, 12, stats.TotalGames)
	assert.Equal(t, 7, stats.Wins)
	assert.Equal(t, 58.3, stats.WinRate)
	assert.Equal(t, 60.0, stats.RecentWinRate)
	assert.Len(t, stats.RecentForm, 10)

	// The form mirrors the most recent matches in input order.
	for i, win := range wins[:10] {
		assert.Equal(t, win, stats.RecentForm[i])
	}
}

// Only the newest 30 matches may contribute.
func TestExtractMatchStatsConsideredBound(t *testing.T) {
	now := time.Now()

	wins := make([]bool, 45)
	for i := range wins {
		wins[i] = true
	}

	stats := ExtractMatchStats(buildWinLossSequence(now, wins), testPuuid, now)

	assert.Equal(t, 30, stats.TotalGames)
}

// Matches without the target player are silently skipped.
func TestExtractMatchStatsSkipsForeignMatches(t *testing.T) {
	now := time.Now()

	matches := []matchfetcher.MatchData{
		buildTestMatch(testMatchOptions{Win: true, TeamKills: 10, Creation: now}),
		buildTestMatch(testMatchOptions{SkipPlayer: true, Creation: now}),
		buildTestMatch(testMatchOptions{Win: false, TeamKills: 10, Creation: now}),
	}

	stats := ExtractMatchStats(matches, testPuuid, now)

	assert.Equal(t, 2, stats.TotalGames)
}

// Every average is exactly zero when no match carries the player.
func TestExtractMatchStatsZeroCase(t *testing.T) {
	stats := ExtractMatchStats(nil, testPuuid, time.Now())

	assert.Equal(t, 0, stats.TotalGames)
	assert.Equal(t, 0.0, stats.WinRate)
	assert.Equal(t, 0.0, stats.AverageKDA)
	assert.Equal(t, 0.0, stats.AverageKills)
	assert.Equal(t, 0, stats.AverageDamage)
	assert.Equal(t, 0.0, stats.KillParticipation)
	assert.Empty(t, stats.RecentForm)
	assert.Empty(t, stats.Trends.Dates)
}

// Kill participation defaults to the neutral midpoint when no match
// yields a valid reading.
func TestExtractMatchStatsKillParticipationDefault(t *testing.T) {
	now := time.Now()

	// Zero team kills on every match.
	matches := []matchfetcher.MatchData{
		buildTestMatch(testMatchOptions{Win: true, TeamKills: 0, Creation: now}),
		buildTestMatch(testMatchOptions{Win: false, TeamKills: 0, Creation: now}),
	}

	stats := ExtractMatchStats(matches, testPuuid, now)

	assert.Equal(t, 50.0, stats.KillParticipation)
}

func TestExtractMatchStatsKillParticipation(t *testing.T) {
	now := time.Now()

	// 5 kills + 7 assists out of 20 team kills = 60%.
	matches := []matchfetcher.MatchData{
		buildTestMatch(testMatchOptions{Win: true, Kills: 5, Assists: 7, TeamKills: 20, Creation: now}),
	}

	stats := ExtractMatchStats(matches, testPuuid, now)

	assert.Equal(t, 60.0, stats.KillParticipation)
}

// The daily series only cover the trend window and come back in
// ascending date order.
func TestExtractMatchStatsTrends(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	matches := []matchfetcher.MatchData{
		buildTestMatch(testMatchOptions{Win: true, Kills: 10, Deaths: 2, Assists: 5, Damage: 30000, TeamKills: 20, Creation: now.AddDate(0, 0, -1)}),
		buildTestMatch(testMatchOptions{Win: false, Kills: 2, Deaths: 8, Assists: 3, Damage: 10000, TeamKills: 20, Creation: now.AddDate(0, 0, -1)}),
		buildTestMatch(testMatchOptions{Win: true, Kills: 4, Deaths: 4, Assists: 4, Damage: 20000, TeamKills: 20, Creation: now.AddDate(0, 0, -10)}),
		// Outside the 30 day window, contributes to totals but not trends.
		buildTestMatch(testMatchOptions{Win: true, TeamKills: 20, Creation: now.AddDate(0, 0, -40)}),
	}

	stats := ExtractMatchStats(matches, testPuuid, now)

	assert.Equal(t, 4, stats.TotalGames)
	assert.Equal(t, []string{"2025-06-20", "2025-06-29"}, stats.Trends.Dates)
	assert.Equal(t, []float64{100.0, 50.0}, stats.Trends.WinRates)
	assert.Equal(t, 20000, stats.Trends.Damages[0])
	// Day with two games averages both of them.
	assert.Equal(t, 20000, stats.Trends.Damages[1])
	assert.Len(t, stats.Trends.KDAs, 2)
}

// Rounding: one decimal for rates, whole numbers for damage and gold.
func TestExtractMatchStatsRounding(t *testing.T) {
	now := time.Now()

	matches := []matchfetcher.MatchData{
		buildTestMatch(testMatchOptions{Win: true, Kills: 7, Deaths: 3, Assists: 8, Damage: 21234, Gold: 11567, Vision: 23, Cs: 177, TeamKills: 25, Creation: now}),
		buildTestMatch(testMatchOptions{Win: false, Kills: 2, Deaths: 6, Assists: 9, Damage: 15111, Gold: 9999, Vision: 18, Cs: 140, TeamKills: 25, Creation: now}),
	}

	stats := ExtractMatchStats(matches, testPuuid, now)

	assert.Equal(t, 4.5, stats.AverageKills)
	assert.Equal(t, 4.5, stats.AverageDeaths)
	assert.Equal(t, 8.5, stats.AverageAssists)
	assert.Equal(t, 18173, stats.AverageDamage)
	assert.Equal(t, 10783, stats.AverageGold)
	assert.Equal(t, 20.5, stats.AverageVision)
	assert.Equal(t, 158.5, stats.AverageCs)
	// (7+2+8+9)/(3+6) = 2.888... -> 2.9
	assert.Equal(t, 2.9, stats.AverageKDA)
}

// BuildRecentMatches caps the list and keeps the input order.
func TestBuildRecentMatches(t *testing.T) {
	now := time.Now()

	wins := make([]bool, 25)
	matches := buildWinLossSequence(now, wins)

	recent := BuildRecentMatches(matches, testPuuid)

	assert.Len(t, recent, 20)
	assert.Equal(t, matches[0].Metadata.MatchId, recent[0].MatchId)
	assert.NotEmpty(t, recent[0].Grade)
	assert.Equal(t, "MIDDLE", recent[0].Role)
}
