package statsservice

import (
	"riftstats/api/dto"
	matchfetcher "riftstats/fetcher/data/match"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Grades are monotone: a strictly better performance never grades lower.
func TestMatchGradeMonotone(t *testing.T) {
	gradeRank := map[string]int{"D": 0, "C": 1, "B": 2, "A": 3, "S": 4, "S+": 5}

	performances := []matchfetcher.MatchPlayer{
		{Kills: 0, Deaths: 10, Assists: 0},
		{Kills: 2, Deaths: 6, Assists: 3, TotalDamageDealtToChampions: 8000, VisionScore: 10, TotalMinionsKilled: 90},
		{Kills: 6, Deaths: 4, Assists: 8, TotalDamageDealtToChampions: 18000, VisionScore: 20, TotalMinionsKilled: 160},
		{Kills: 12, Deaths: 2, Assists: 10, TotalDamageDealtToChampions: 30000, VisionScore: 35, TotalMinionsKilled: 220},
		{Kills: 20, Deaths: 0, Assists: 15, TotalDamageDealtToChampions: 45000, VisionScore: 50, TotalMinionsKilled: 280},
	}

	previous := -1
	for _, player := range performances {
		grade := MatchGrade(&player, 1800)
		rank, known := gradeRank[grade]

		assert.True(t, known, "unexpected grade %q", grade)
		assert.GreaterOrEqual(t, rank, previous)
		previous = rank
	}
}

func TestMatchGradeZeroDuration(t *testing.T) {
	player := &matchfetcher.MatchPlayer{Kills: 5, Deaths: 2, Assists: 5}

	// A zero duration must not produce a division blowup.
	grade := MatchGrade(player, 0)
	assert.NotEmpty(t, grade)
}

func TestChampionTier(t *testing.T) {
	tests := []struct {
		name        string
		performance dto.ChampionPerformance
		expected    string
	}{
		{
			name:        "no games stays unranked",
			performance: dto.ChampionPerformance{Games: 0},
			expected:    "UNRANKED",
		},
		{
			name: "dominant champion lands in S",
			performance: dto.ChampionPerformance{
				Games: 20, WinRate: 75, AverageKDA: 5,
			},
			expected: "S",
		},
		{
			name: "struggling champion lands low",
			performance: dto.ChampionPerformance{
				Games: 2, WinRate: 0, AverageKDA: 0.5,
			},
			expected: "D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChampionTier(tt.performance))
		})
	}
}

// Buckets exist for every tier and keep the mastery order within a bucket.
func TestTierBuckets(t *testing.T) {
	mastery := &dto.ChampionMastery{
		TopChampions: []dto.ChampionPerformance{
			{ChampionName: "Annie", Games: 20, WinRate: 75, AverageKDA: 5, Tier: "S"},
			{ChampionName: "Olaf", Games: 10, WinRate: 50, AverageKDA: 2, Tier: "A"},
			{ChampionName: "Galio", Games: 15, WinRate: 70, AverageKDA: 4, Tier: "S"},
			{ChampionName: "Yorick", Games: 0, Tier: "UNRANKED"},
		},
	}

	buckets := TierBuckets(mastery)

	assert.Equal(t, []string{"Annie", "Galio"}, buckets["S"])
	assert.Equal(t, []string{"Olaf"}, buckets["A"])
	assert.Empty(t, buckets["D"])

	// Every tier label has a bucket, even when empty.
	for _, tier := range []string{"S", "A", "B", "C", "D"} {
		assert.Contains(t, buckets, tier)
	}
}

func TestTierBucketsNilMastery(t *testing.T) {
	buckets := TierBuckets(nil)

	for _, tier := range []string{"S", "A", "B", "C", "D"} {
		assert.Empty(t, buckets[tier])
	}
}
