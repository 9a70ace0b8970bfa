package dto

// ChampionMastery holds the ranked champion summaries and the two scalar totals.
type ChampionMastery struct {
	TopChampions       []ChampionPerformance `json:"topChampions"`
	TotalMasteryPoints int                   `json:"totalMasteryPoints"`
	ChampionsAtLevel5  int                   `json:"championsAtLevel5"`
}

// ChampionPerformance joins a mastery record with the match outcomes
// for that champion.
type ChampionPerformance struct {
	ChampionId    int     `json:"championId"`
	ChampionName  string  `json:"championName"`
	MasteryPoints int     `json:"masteryPoints"`
	MasteryLevel  int     `json:"masteryLevel"`
	ChestGranted  bool    `json:"chestGranted"`
	LastPlayed    int64   `json:"lastPlayed"`
	Games         int     `json:"games"`
	Wins          int     `json:"wins"`
	WinRate       float64 `json:"winRate"`
	AverageKDA    float64 `json:"averageKDA"`
	AverageDamage int     `json:"averageDamage"`
	PreferredRole string  `json:"preferredRole"`
	Tier          string  `json:"tier"`
}
