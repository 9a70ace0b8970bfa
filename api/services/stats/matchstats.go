package statsservice

import (
	"math"
	"riftstats/api/dto"
	matchfetcher "riftstats/fetcher/data/match"
	"sort"
	"time"
)

const (
	// Only the newest matches feed the aggregate statistics.
	maxConsideredMatches = 30
	// Size of the recent win/loss form sequence.
	recentFormSize = 10
	// How far back the daily trend series reach.
	trendWindowDays = 30
	// Neutral kill participation used when no match yields a valid reading.
	defaultKillParticipation = 50.0
	// How many matches are returned on the payload.
	recentMatchesReturned = 20
)

// ExtractMatchStats reduces a list of raw matches (newest first) into the
// aggregate statistics for the given player. Matches where the player's
// puuid is not among the participants are silently skipped.
func ExtractMatchStats(matches []matchfetcher.MatchData, puuid string, now time.Time) *dto.MatchStats {
	if len(matches) > maxConsideredMatches {
		matches = matches[:maxConsideredMatches]
	}

	stats := &dto.MatchStats{
		RecentForm: []bool{},
		Trends:     emptyTrends(),
	}

	var (
		totalKills   int
		totalDeaths  int
		totalAssists int
		totalDamage  int
		totalGold    int
		totalVision  int
		totalCs      int
		totalSeconds int

		kpSum      float64
		kpReadings int

		recentWins int
	)

	type trendPoint struct {
		wins   int
		games  int
		kda    float64
		damage int
	}
	trendByDate := make(map[string]*trendPoint)
	trendCutoff := now.AddDate(0, 0, -trendWindowDays)

	for _, match := range matches {
		player := findParticipant(match.Info.Participants, puuid)
		if player == nil {
			continue
		}

		stats.TotalGames++
		if player.Win {
			stats.Wins++
		} else {
			stats.Losses++
		}

		// The win/loss form only covers the most recent games.
		if len(stats.RecentForm) < recentFormSize {
			stats.RecentForm = append(stats.RecentForm, player.Win)
			if player.Win {
				recentWins++
			}
		}

		totalKills += player.Kills
		totalDeaths += player.Deaths
		totalAssists += player.Assists
		totalDamage += player.TotalDamageDealtToChampions
		totalGold += player.GoldEarned
		totalVision += player.VisionScore
		totalCs += player.TotalMinionsKilled + player.NeutralMinionsKilled
		totalSeconds += match.Info.GameDuration

		// Kill participation is undefined when the team had no kills at all.
		teamKills := teamTotalKills(match.Info.Participants, player.TeamId)
		if teamKills > 0 {
			kpSum += float64(player.Kills+player.Assists) / float64(teamKills) * 100
			kpReadings++
		}

		// Group into the daily trend series when within the window.
		creation := match.Info.GameCreation.Time()
		if creation.After(trendCutoff) {
			date := creation.Format("2006-01-02")
			point, exists := trendByDate[date]
			if !exists {
				point = &trendPoint{}
				trendByDate[date] = point
			}
			point.games++
			if player.Win {
				point.wins++
			}
			point.kda += kdaValue(player.Kills, player.Deaths, player.Assists)
			point.damage += player.TotalDamageDealtToChampions
		}
	}

	// No matches found for the player: keep every field zeroed.
	if stats.TotalGames == 0 {
		return stats
	}

	games := float64(stats.TotalGames)
	stats.WinRate = round1(float64(stats.Wins) / games * 100)
	stats.RecentWinRate = round1(float64(recentWins) / float64(len(stats.RecentForm)) * 100)
	stats.AverageKills = round1(float64(totalKills) / games)
	stats.AverageDeaths = round1(float64(totalDeaths) / games)
	stats.AverageAssists = round1(float64(totalAssists) / games)
	stats.AverageKDA = round1(kdaValue(totalKills, totalDeaths, totalAssists))
	stats.AverageDamage = roundInt(float64(totalDamage) / games)
	stats.AverageGold = roundInt(float64(totalGold) / games)
	stats.AverageVision = round1(float64(totalVision) / games)
	stats.AverageCs = round1(float64(totalCs) / games)

	if totalSeconds > 0 {
		minutes := float64(totalSeconds) / 60
		stats.DamagePerMinute = round1(float64(totalDamage) / minutes)
		stats.GoldPerMinute = round1(float64(totalGold) / minutes)
	}

	if kpReadings > 0 {
		stats.KillParticipation = round1(kpSum / float64(kpReadings))
	} else {
		stats.KillParticipation = defaultKillParticipation
	}

	// Build the parallel trend series ordered by ascending date.
	dates := make([]string, 0, len(trendByDate))
	for date := range trendByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		point := trendByDate[date]
		stats.Trends.Dates = append(stats.Trends.Dates, date)
		stats.Trends.WinRates = append(stats.Trends.WinRates, round1(float64(point.wins)/float64(point.games)*100))
		stats.Trends.KDAs = append(stats.Trends.KDAs, round1(point.kda/float64(point.games)))
		stats.Trends.Damages = append(stats.Trends.Damages, roundInt(float64(point.damage)/float64(point.games)))
	}

	return stats
}

// BuildRecentMatches flattens the newest matches into the player's
// perspective, capped to the payload limit.
func BuildRecentMatches(matches []matchfetcher.MatchData, puuid string) []dto.RecentMatch {
	recent := []dto.RecentMatch{}

	for _, match := range matches {
		if len(recent) >= recentMatchesReturned {
			break
		}

		player := findParticipant(match.Info.Participants, puuid)
		if player == nil {
			continue
		}

		kda := round1(kdaValue(player.Kills, player.Deaths, player.Assists))
		recent = append(recent, dto.RecentMatch{
			MatchId:      match.Metadata.MatchId,
			Date:         match.Info.GameCreation.Time(),
			Duration:     match.Info.GameDuration,
			QueueId:      match.Info.QueueId,
			ChampionId:   player.ChampionId,
			ChampionName: championName(player.ChampionId, player.ChampionName),
			Kills:        player.Kills,
			Deaths:       player.Deaths,
			Assists:      player.Assists,
			KDA:          kda,
			Damage:       player.TotalDamageDealtToChampions,
			Gold:         player.GoldEarned,
			VisionScore:  player.VisionScore,
			Cs:           player.TotalMinionsKilled + player.NeutralMinionsKilled,
			Role:         player.TeamPosition,
			Win:          player.Win,
			Grade:        MatchGrade(player, match.Info.GameDuration),
		})
	}

	return recent
}

// findParticipant returns the participant with the given puuid, or nil.
func findParticipant(participants []matchfetcher.MatchPlayer, puuid string) *matchfetcher.MatchPlayer {
	for i := range participants {
		if participants[i].Puuid == puuid {
			return &participants[i]
		}
	}
	return nil
}

// teamTotalKills sums the kills of every participant on the given team.
func teamTotalKills(participants []matchfetcher.MatchPlayer, teamId int) int {
	total := 0
	for i := range participants {
		if participants[i].TeamId == teamId {
			total += participants[i].Kills
		}
	}
	return total
}

// kdaValue computes (kills + assists) / deaths, or kills + assists on a
// deathless game.
func kdaValue(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return float64(kills+assists) / float64(deaths)
}

func emptyTrends() *dto.TrendSeries {
	return &dto.TrendSeries{
		Dates:    []string{},
		WinRates: []float64{},
		KDAs:     []float64{},
		Damages:  []int{},
	}
}

// round1 rounds to one decimal place.
func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// roundInt rounds to the nearest integer.
func roundInt(value float64) int {
	return int(math.Round(value))
}
