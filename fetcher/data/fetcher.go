package data

import (
	challengesfetcher "riftstats/fetcher/data/challenges"
	clashfetcher "riftstats/fetcher/data/clash"
	leaguefetcher "riftstats/fetcher/data/league"
	masteryfetcher "riftstats/fetcher/data/mastery"
	matchfetcher "riftstats/fetcher/data/match"
	playerfetcher "riftstats/fetcher/data/player"
	"riftstats/fetcher/requests"
)

// MainFetcher groups every per-resource Riot client for a region.
type MainFetcher struct {
	Challenges *challengesfetcher.ChallengesFetcher
	Clash      *clashfetcher.ClashFetcher
	League     *leaguefetcher.LeagueFetcher
	Mastery    *masteryfetcher.MasteryFetcher
	Match      *matchfetcher.MatchFetcher
	Player     *playerfetcher.PlayerFetcher
}

// CreateMainFetcher instantiates the main fetcher for a region.
// All clients share one rate limiter, since the Riot limits are per key.
func CreateMainFetcher(region string) *MainFetcher {
	limiter := requests.CreateRateLimiter()

	return &MainFetcher{
		Challenges: challengesfetcher.CreateChallengesFetcher(limiter, region),
		Clash:      clashfetcher.CreateClashFetcher(limiter, region),
		League:     leaguefetcher.CreateLeagueFetcher(limiter, region),
		Mastery:    masteryfetcher.CreateMasteryFetcher(limiter, region),
		Match:      matchfetcher.CreateMatchFetcher(limiter, region),
		Player:     playerfetcher.CreatePlayerFetcher(limiter, region),
	}
}
