package dto

// PlayerInfo identifies the player the payload was assembled for.
type PlayerInfo struct {
	Puuid         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	Region        string `json:"region"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// AggregatedPlayerPayload is the single normalized object returned by the
// aggregation pipeline and cached between requests.
type AggregatedPlayerPayload struct {
	PlayerInfo      PlayerInfo        `json:"playerInfo"`
	MatchStats      *MatchStats       `json:"matchStats"`
	ChampionMastery *ChampionMastery  `json:"championMastery"`
	RecentMatches   []RecentMatch     `json:"recentMatches"`
	Challenges      *ChallengeSummary `json:"challenges"`
	Clash           *ClashSummary     `json:"clash"`
	Ranked          *RankedSummary    `json:"ranked"`
	Insights        *Insights         `json:"insights"`
}
