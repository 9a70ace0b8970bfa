package masteryfetcher

// MasteryEntry is a single champion mastery record for a player.
// Keyed by champion id, unique per player.
type MasteryEntry struct {
	ChampionId     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	ChestGranted   bool  `json:"chestGranted"`
	LastPlayTime   int64 `json:"lastPlayTime"`
	TokensEarned   int   `json:"tokensEarned"`
}
