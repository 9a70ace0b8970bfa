package dto

import "time"

// Insights are the derived heuristics over the other pipeline outputs.
type Insights struct {
	StrongestChampions []ChampionInsight   `json:"strongestChampions"`
	WeakestChampions   []ChampionInsight   `json:"weakestChampions"`
	BestRole           RoleInsight         `json:"bestRole"`
	WorstRole          RoleInsight         `json:"worstRole"`
	PeakPerformance    *PeakMatch          `json:"peakPerformance"`
	ImprovementAreas   []string            `json:"improvementAreas"`
	TierBuckets        map[string][]string `json:"tierBuckets"`
}

// ChampionInsight is a champion win-rate reading with enough games to matter.
type ChampionInsight struct {
	ChampionId   int     `json:"championId"`
	ChampionName string  `json:"championName"`
	Games        int     `json:"games"`
	WinRate      float64 `json:"winRate"`
}

// RoleInsight is a per-role win-rate reading.
type RoleInsight struct {
	Role    string  `json:"role"`
	Games   int     `json:"games"`
	WinRate float64 `json:"winRate"`
}

// PeakMatch is the single recent match with the highest performance score.
type PeakMatch struct {
	MatchId string    `json:"matchId"`
	Date    time.Time `json:"date"`
	KDA     float64   `json:"kda"`
	Damage  int       `json:"damage"`
	Score   float64   `json:"score"`
}
