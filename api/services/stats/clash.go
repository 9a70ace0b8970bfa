package statsservice

import (
	"riftstats/api/dto"
	"sort"
)

const recentTournamentCount = 5

// Container keys the clash endpoint has nested it's entries under across
// API revisions, tried in order.
var clashContainerKeys = []string{"tournaments", "data", "results"}

// NormalizeClash reduces the possibly null, possibly non-array clash blob
// into a canonical summary. Entries lacking a positive tournament id are
// filtered out.
func NormalizeClash(blob any) *dto.ClashSummary {
	summary := &dto.ClashSummary{
		RecentTournaments: []dto.ClashTournament{},
	}

	entries := clashEntries(blob)
	if len(entries) == 0 {
		return summary
	}

	tournaments := []dto.ClashTournament{}
	for _, entry := range entries {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		tournament := dto.ClashTournament{
			TournamentId:    intField(record, "tournamentId", "id"),
			Name:            strField(record, "tournamentName", "name"),
			TeamName:        strField(record, "teamName"),
			TeamId:          strField(record, "teamId"),
			Placement:       intField(record, "placement", "position"),
			BracketPosition: intField(record, "bracketPosition"),
			Timestamp:       int64(intField(record, "timestamp", "registrationTime")),
		}

		if tournament.TournamentId <= 0 {
			continue
		}

		tournaments = append(tournaments, tournament)
	}

	summary.TournamentsParticipated = len(tournaments)

	// Best result is the lowest reported placement.
	for _, tournament := range tournaments {
		if tournament.Placement <= 0 {
			continue
		}
		if summary.BestResult == nil || tournament.Placement < *summary.BestResult {
			placement := tournament.Placement
			summary.BestResult = &placement
		}
	}

	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].Timestamp > tournaments[j].Timestamp
	})

	if len(tournaments) > recentTournamentCount {
		tournaments = tournaments[:recentTournamentCount]
	}
	summary.RecentTournaments = tournaments

	return summary
}

// clashEntries resolves the entry list out of whichever shape arrived:
// a bare array, or a object nesting the array under a known key.
func clashEntries(blob any) []any {
	if blob == nil {
		return nil
	}

	if entries, ok := blob.([]any); ok {
		return entries
	}

	container, ok := blob.(map[string]any)
	if !ok {
		return nil
	}

	for _, key := range clashContainerKeys {
		if entries, ok := container[key].([]any); ok {
			return entries
		}
	}

	return nil
}

// strField returns the first string value among the candidate keys.
func strField(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := record[key].(string); ok {
			return value
		}
	}
	return ""
}

// intField returns the first numeric value among the candidate keys.
// JSON numbers decode as float64.
func intField(record map[string]any, keys ...string) int {
	for _, key := range keys {
		switch value := record[key].(type) {
		case float64:
			return int(value)
		case int:
			return value
		}
	}
	return 0
}
