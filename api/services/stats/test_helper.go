package statsservice

import (
	matchfetcher "riftstats/fetcher/data/match"
	"time"
)

const testPuuid = "test-puuid"

// testMatchOptions tweak the generated participant for the target player.
type testMatchOptions struct {
	Win          bool
	Kills        int
	Deaths       int
	Assists      int
	Damage       int
	Gold         int
	Vision       int
	Cs           int
	ChampionId   int
	ChampionName string
	Role         string
	TeamKills    int
	Creation     time.Time
	Duration     int
	MatchId      string
	SkipPlayer   bool
}

// buildTestMatch builds a ten participant match around the target player.
func buildTestMatch(opts testMatchOptions) matchfetcher.MatchData {
	if opts.Duration == 0 {
		opts.Duration = 1800
	}
	if opts.Creation.IsZero() {
		opts.Creation = time.Now()
	}
	if opts.MatchId == "" {
		opts.MatchId = "NA1_1"
	}

	participants := []matchfetcher.MatchPlayer{}

	if !opts.SkipPlayer {
		participants = append(participants, matchfetcher.MatchPlayer{
			Puuid:                       testPuuid,
			ChampionId:                  opts.ChampionId,
			ChampionName:                opts.ChampionName,
			Kills:                       opts.Kills,
			Deaths:                      opts.Deaths,
			Assists:                     opts.Assists,
			TotalDamageDealtToChampions: opts.Damage,
			GoldEarned:                  opts.Gold,
			VisionScore:                 opts.Vision,
			TotalMinionsKilled:          opts.Cs,
			TeamPosition:                opts.Role,
			TeamId:                      100,
			Win:                         opts.Win,
		})
	}

	// One teammate carries the remaining team kills so the kill
	// participation readings are controlled by TeamKills.
	teammateKills := opts.TeamKills - opts.Kills
	if teammateKills < 0 {
		teammateKills = 0
	}
	participants = append(participants, matchfetcher.MatchPlayer{
		Puuid:  "teammate-puuid",
		Kills:  teammateKills,
		TeamId: 100,
		Win:    opts.Win,
	})

	for i := 0; i < 5; i++ {
		participants = append(participants, matchfetcher.MatchPlayer{
			Puuid:  "enemy-puuid",
			TeamId: 200,
			Win:    !opts.Win,
		})
	}

	return matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: opts.MatchId},
		Info: matchfetcher.MatchInfo{
			GameCreation: matchfetcher.RiotTime(opts.Creation),
			GameDuration: opts.Duration,
			QueueId:      420,
			Participants: participants,
		},
	}
}

// buildWinLossSequence builds matches, newest first, from a win flags slice.
func buildWinLossSequence(now time.Time, wins []bool) []matchfetcher.MatchData {
	matches := make([]matchfetcher.MatchData, len(wins))
	for i, win := range wins {
		matches[i] = buildTestMatch(testMatchOptions{
			Win:       win,
			Kills:     5,
			Deaths:    3,
			Assists:   7,
			Damage:    20000,
			Gold:      12000,
			Vision:    25,
			Cs:        180,
			TeamKills: 20,
			Role:      "MIDDLE",
			Creation:  now.Add(-time.Duration(i) * time.Hour),
			MatchId:   "NA1_" + string(rune('a'+i)),
		})
	}
	return matches
}
