package statsservice

import (
	"riftstats/fetcher/data"
	challengesfetcher "riftstats/fetcher/data/challenges"
	leaguefetcher "riftstats/fetcher/data/league"
	masteryfetcher "riftstats/fetcher/data/mastery"
	matchfetcher "riftstats/fetcher/data/match"
	playerfetcher "riftstats/fetcher/data/player"
)

// riotFetcher adapts the per-resource riot clients to the pipeline boundary.
type riotFetcher struct {
	fetcher *data.MainFetcher
}

// NewRiotFetcher creates the riot-backed fetcher for a region.
func NewRiotFetcher(region string) PlayerDataFetcher {
	return &riotFetcher{
		fetcher: data.CreateMainFetcher(region),
	}
}

func (rf *riotFetcher) GetAccountByRiotId(gameName string, tagLine string) (*playerfetcher.Account, error) {
	return rf.fetcher.Player.GetAccountByRiotId(gameName, tagLine)
}

func (rf *riotFetcher) GetSummonerByPuuid(puuid string) (*playerfetcher.SummonerByPuuid, error) {
	return rf.fetcher.Player.GetSummonerByPuuid(puuid)
}

func (rf *riotFetcher) GetMatchIds(puuid string, count int, queue int) ([]string, error) {
	return rf.fetcher.Match.GetMatchIds(puuid, count, queue)
}

func (rf *riotFetcher) GetMatchData(matchId string) (*matchfetcher.MatchData, error) {
	return rf.fetcher.Match.GetMatchData(matchId)
}

func (rf *riotFetcher) GetMasteriesByPuuid(puuid string) ([]masteryfetcher.MasteryEntry, error) {
	return rf.fetcher.Mastery.GetMasteriesByPuuid(puuid)
}

func (rf *riotFetcher) GetLeagueByPuuid(puuid string) ([]leaguefetcher.LeagueEntry, error) {
	return rf.fetcher.League.GetLeagueByPuuid(puuid)
}

func (rf *riotFetcher) GetPlayerChallenges(puuid string) (*challengesfetcher.PlayerChallenges, error) {
	return rf.fetcher.Challenges.GetPlayerChallenges(puuid)
}

func (rf *riotFetcher) GetClashHistory(puuid string) (any, error) {
	return rf.fetcher.Clash.GetClashHistory(puuid)
}
