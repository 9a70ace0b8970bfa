package statsservice

import (
	"fmt"
	"riftstats/api/dto"
	masteryfetcher "riftstats/fetcher/data/mastery"
	matchfetcher "riftstats/fetcher/data/match"
	"sort"
)

const (
	// How many champion summaries survive the truncation.
	topChampionCount = 15
	// How many recent matches are scanned per mastery record.
	masteryScanBound = 100
	// Mastery level that counts towards the high-mastery total.
	highMasteryLevel = 5
)

// AggregateMastery joins the champion mastery list with the recent match
// outcomes of the same player, producing the ranked top champions plus the
// two scalar totals.
func AggregateMastery(masteries []masteryfetcher.MasteryEntry, matches []matchfetcher.MatchData, puuid string) *dto.ChampionMastery {
	result := &dto.ChampionMastery{
		TopChampions: []dto.ChampionPerformance{},
	}

	if len(matches) > masteryScanBound {
		matches = matches[:masteryScanBound]
	}

	for _, mastery := range masteries {
		result.TotalMasteryPoints += mastery.ChampionPoints
		if mastery.ChampionLevel >= highMasteryLevel {
			result.ChampionsAtLevel5++
		}

		performance := dto.ChampionPerformance{
			ChampionId:    mastery.ChampionId,
			ChampionName:  championName(mastery.ChampionId, ""),
			MasteryPoints: mastery.ChampionPoints,
			MasteryLevel:  mastery.ChampionLevel,
			ChestGranted:  mastery.ChestGranted,
			LastPlayed:    mastery.LastPlayTime,
		}

		var kdaTotal float64
		var damageTotal int

		// Accumulate the match outcomes for this specific champion.
		for _, match := range matches {
			player := findParticipant(match.Info.Participants, puuid)
			if player == nil || player.ChampionId != mastery.ChampionId {
				continue
			}

			performance.Games++
			if player.Win {
				performance.Wins++
			}
			kdaTotal += kdaValue(player.Kills, player.Deaths, player.Assists)
			damageTotal += player.TotalDamageDealtToChampions

			// The upstream name beats the placeholder when available.
			if player.ChampionName != "" {
				performance.ChampionName = player.ChampionName
			}
			if performance.PreferredRole == "" && player.TeamPosition != "" {
				performance.PreferredRole = player.TeamPosition
			}
		}

		// Rates are only meaningful with at least one game.
		if performance.Games > 0 {
			performance.WinRate = round1(float64(performance.Wins) / float64(performance.Games) * 100)
			performance.AverageKDA = round1(kdaTotal / float64(performance.Games))
			performance.AverageDamage = roundInt(float64(damageTotal) / float64(performance.Games))
		}

		performance.Tier = ChampionTier(performance)

		result.TopChampions = append(result.TopChampions, performance)
	}

	// Strictly by raw mastery points, ties keep the input order.
	sort.SliceStable(result.TopChampions, func(i, j int) bool {
		return result.TopChampions[i].MasteryPoints > result.TopChampions[j].MasteryPoints
	})

	if len(result.TopChampions) > topChampionCount {
		result.TopChampions = result.TopChampions[:topChampionCount]
	}

	return result
}

// championName resolves a champion display name, falling back to a
// deterministic placeholder for ids the upstream never named.
func championName(championId int, known string) string {
	if known != "" {
		return known
	}
	return fmt.Sprintf("Champion %d", championId)
}
