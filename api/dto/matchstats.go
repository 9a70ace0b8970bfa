package dto

import "time"

// MatchStats are the aggregate statistics over the considered matches.
type MatchStats struct {
	TotalGames        int          `json:"totalGames"`
	Wins              int          `json:"wins"`
	Losses            int          `json:"losses"`
	WinRate           float64      `json:"winRate"`
	RecentWinRate     float64      `json:"recentWinRate"`
	RecentForm        []bool       `json:"recentForm"`
	AverageKills      float64      `json:"averageKills"`
	AverageDeaths     float64      `json:"averageDeaths"`
	AverageAssists    float64      `json:"averageAssists"`
	AverageKDA        float64      `json:"averageKDA"`
	AverageDamage     int          `json:"averageDamage"`
	AverageGold       int          `json:"averageGold"`
	AverageVision     float64      `json:"averageVision"`
	AverageCs         float64      `json:"averageCs"`
	DamagePerMinute   float64      `json:"damagePerMinute"`
	GoldPerMinute     float64      `json:"goldPerMinute"`
	KillParticipation float64      `json:"killParticipation"`
	Trends            *TrendSeries `json:"trends"`
}

// TrendSeries are parallel per-day series over the last 30 days,
// ordered by ascending date.
type TrendSeries struct {
	Dates    []string  `json:"dates"`
	WinRates []float64 `json:"winRates"`
	KDAs     []float64 `json:"kdas"`
	Damages  []int     `json:"damages"`
}

// RecentMatch is a single recent match from the target player's perspective.
type RecentMatch struct {
	MatchId      string    `json:"matchId"`
	Date         time.Time `json:"date"`
	Duration     int       `json:"duration"`
	QueueId      int       `json:"queueId"`
	ChampionId   int       `json:"championId"`
	ChampionName string    `json:"championName"`
	Kills        int       `json:"kills"`
	Deaths       int       `json:"deaths"`
	Assists      int       `json:"assists"`
	KDA          float64   `json:"kda"`
	Damage       int       `json:"damage"`
	Gold         int       `json:"gold"`
	VisionScore  int       `json:"visionScore"`
	Cs           int       `json:"cs"`
	Role         string    `json:"role"`
	Win          bool      `json:"win"`
	Grade        string    `json:"grade"`
}
