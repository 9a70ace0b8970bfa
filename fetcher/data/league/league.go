package leaguefetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/fetcher/requests"
)

// LeagueEntry is the type returned by the league entries endpoint.
type LeagueEntry struct {
	SummonerId   string  `json:"summonerId"`
	Puuid        string  `json:"puuid"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	QueueType    *string `json:"queueType,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	FreshBlood   bool    `json:"freshBlood"`
	HotStreak    bool    `json:"hotStreak"`
}

// The league fetcher with it's limiter and region.
type LeagueFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a league fetcher.
func CreateLeagueFetcher(limiter *requests.RateLimiter, region string) *LeagueFetcher {
	return &LeagueFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetLeagueByPuuid gets a given player entries for each queue.
func (l *LeagueFetcher) GetLeagueByPuuid(puuid string) ([]LeagueEntry, error) {
	l.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		l.region, puuid)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	// Parse the league entries.
	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}
