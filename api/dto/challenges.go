package dto

// ChallengeSummary is the normalized challenge progression of a player.
type ChallengeSummary struct {
	Categories         CategoryPoints  `json:"categories"`
	Total              *ChallengeTotal `json:"total"`
	TopAchievements    []Achievement   `json:"topAchievements"`
	RecentAchievements []Achievement   `json:"recentAchievements"`
}

// CategoryPoints is the fixed five-category point structure.
type CategoryPoints struct {
	Combat     float64 `json:"COMBAT"`
	Expertise  float64 `json:"EXPERTISE"`
	Teamwork   float64 `json:"TEAMWORK"`
	Collection float64 `json:"COLLECTION"`
	Legacy     float64 `json:"LEGACY"`
}

// ChallengeTotal is the overall points/level/percentile triple.
type ChallengeTotal struct {
	Points     int     `json:"points"`
	Level      string  `json:"level"`
	Percentile float64 `json:"percentile"`
}

// Achievement is a single challenge surfaced on the top or recent lists.
type Achievement struct {
	ChallengeId  int64   `json:"challengeId"`
	Level        string  `json:"level"`
	Value        float64 `json:"value"`
	Percentile   float64 `json:"percentile"`
	AchievedTime int64   `json:"achievedTime,omitempty"`
}
