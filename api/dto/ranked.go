package dto

// RankedSummary buckets the league entries into the two ranked queues.
// A queue the player has no entry for stays nil.
type RankedSummary struct {
	SoloQueue *QueueRanking `json:"soloQueue,omitempty"`
	FlexQueue *QueueRanking `json:"flexQueue,omitempty"`
}

// QueueRanking is a single queue standing.
type QueueRanking struct {
	Tier         string  `json:"tier"`
	Rank         string  `json:"rank"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	NumericRank  int     `json:"numericRank"`
}

// ClashSummary is the normalized clash participation of a player.
type ClashSummary struct {
	TournamentsParticipated int               `json:"tournamentsParticipated"`
	RecentTournaments       []ClashTournament `json:"recentTournaments"`
	BestResult              *int              `json:"bestResult,omitempty"`
}

// ClashTournament is a single tournament participation entry.
type ClashTournament struct {
	TournamentId    int    `json:"tournamentId"`
	Name            string `json:"name"`
	TeamName        string `json:"teamName"`
	TeamId          string `json:"teamId"`
	Placement       int    `json:"placement"`
	BracketPosition int    `json:"bracketPosition"`
	Timestamp       int64  `json:"timestamp"`
}
