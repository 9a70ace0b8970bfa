package statsservice

import (
	"riftstats/api/dto"
	matchfetcher "riftstats/fetcher/data/match"
)

// Weights of the per-match performance score.
const (
	gradeKdaWeight    = 3.0
	gradeDamageWeight = 0.01
	gradeVisionWeight = 0.1
	gradeCsWeight     = 1.0
)

// Grade boundaries, highest first. Monotone in the score.
var gradeBoundaries = []struct {
	min   float64
	grade string
}{
	{15, "S+"},
	{12, "S"},
	{9, "A"},
	{6, "B"},
	{3, "C"},
}

// Tier boundaries for the champion tier-list buckets.
var tierBoundaries = []struct {
	min  float64
	tier string
}{
	{60, "S"},
	{45, "A"},
	{30, "B"},
	{15, "C"},
}

// Bucket order used on the insights tier list.
var tierOrder = []string{"S", "A", "B", "C", "D"}

// MatchGrade scores a single match performance into a letter grade from a
// weighted sum of KDA, damage rate, vision and CS rate.
func MatchGrade(player *matchfetcher.MatchPlayer, durationSeconds int) string {
	minutes := float64(durationSeconds) / 60
	if minutes <= 0 {
		minutes = 1
	}

	kda := kdaValue(player.Kills, player.Deaths, player.Assists)
	damagePerMin := float64(player.TotalDamageDealtToChampions) / minutes
	csPerMin := float64(player.TotalMinionsKilled+player.NeutralMinionsKilled) / minutes

	score := kda*gradeKdaWeight +
		damagePerMin*gradeDamageWeight +
		float64(player.VisionScore)*gradeVisionWeight +
		csPerMin*gradeCsWeight

	for _, boundary := range gradeBoundaries {
		if score >= boundary.min {
			return boundary.grade
		}
	}
	return "D"
}

// ChampionTier buckets a champion summary into a tier-list label from a
// weighted score of win rate, games played and average KDA. Champions
// without any recorded game stay unranked.
func ChampionTier(performance dto.ChampionPerformance) string {
	if performance.Games == 0 {
		return "UNRANKED"
	}

	games := performance.Games
	if games > 20 {
		games = 20
	}

	score := performance.WinRate*0.5 + float64(games)*1.5 + performance.AverageKDA*5

	for _, boundary := range tierBoundaries {
		if score >= boundary.min {
			return boundary.tier
		}
	}
	return "D"
}

// TierBuckets groups the top champions by their tier label, keeping the
// mastery order inside each bucket. Unranked champions are left out.
func TierBuckets(mastery *dto.ChampionMastery) map[string][]string {
	buckets := make(map[string][]string)
	for _, tier := range tierOrder {
		buckets[tier] = []string{}
	}

	if mastery == nil {
		return buckets
	}

	for _, champion := range mastery.TopChampions {
		if champion.Tier == "UNRANKED" {
			continue
		}
		buckets[champion.Tier] = append(buckets[champion.Tier], champion.ChampionName)
	}

	return buckets
}
