package matchfetcher

import (
	"encoding/json"
	"time"
)

// RiotTime handles the milliseconds timestamps returned by the match endpoints.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// MarshalJSON writes the riot time back as milliseconds.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// MatchData is the return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds the match id and the participant puuids.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	Participants    []MatchPlayer `json:"participants"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
// Sourced verbatim from the upstream API and never mutated.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	Deaths                      int    `json:"deaths"`
	DoubleKills                 int    `json:"doubleKills"`
	FirstBloodKill              bool   `json:"firstBloodKill"`
	GoldEarned                  int    `json:"goldEarned"`
	Kills                       int    `json:"kills"`
	Lane                        string `json:"lane"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	PentaKills                  int    `json:"pentaKills"`
	Puuid                       string `json:"puuid"`
	QuadraKills                 int    `json:"quadraKills"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TripleKills                 int    `json:"tripleKills"`
	VisionScore                 int    `json:"visionScore"`
	Win                         bool   `json:"win"`
}

// TeamInfo contains the bans, id and if the team won.
type TeamInfo struct {
	Bans   []Ban `json:"bans"`
	TeamId int   `json:"teamId"`
	Win    bool  `json:"win"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
