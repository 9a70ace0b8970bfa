package statsservice

import (
	"riftstats/api/dto"
	leaguefetcher "riftstats/fetcher/data/league"
	queuevalues "riftstats/pkg/riotvalues/queue"
	tiervalues "riftstats/pkg/riotvalues/tier"
)

// ExtractRanked buckets the league entries into the solo and flex queue
// standings. Entries with any other queue type are ignored, and a queue
// absent from the input leaves the corresponding summary nil.
func ExtractRanked(entries []leaguefetcher.LeagueEntry) *dto.RankedSummary {
	summary := &dto.RankedSummary{}

	for _, entry := range entries {
		if entry.QueueType == nil {
			continue
		}

		switch *entry.QueueType {
		case queuevalues.SoloQueueType:
			summary.SoloQueue = toQueueRanking(entry)
		case queuevalues.FlexQueueType:
			summary.FlexQueue = toQueueRanking(entry)
		}
	}

	return summary
}

func toQueueRanking(entry leaguefetcher.LeagueEntry) *dto.QueueRanking {
	ranking := &dto.QueueRanking{
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
	}

	if entry.Tier != nil {
		ranking.Tier = *entry.Tier
	}
	if entry.Rank != nil {
		ranking.Rank = *entry.Rank
	}

	total := entry.Wins + entry.Losses
	if total > 0 {
		ranking.WinRate = round1(float64(entry.Wins) / float64(total) * 100)
	}

	ranking.NumericRank = tiervalues.CalculateRank(ranking.Tier, ranking.Rank, entry.LeaguePoints)

	return ranking
}
