package matchfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/fetcher/regions"
	"riftstats/fetcher/requests"
	"strconv"
)

// The match fetcher with it's limiter and region.
type MatchFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a match fetcher.
func CreateMatchFetcher(limiter *requests.RateLimiter, region string) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetMatchIds retrieves the most recent match ids for a player, newest first.
// A queue of 0 means no queue filter.
func (m *MatchFetcher) GetMatchIds(puuid string, count int, queue int) ([]string, error) {
	m.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids",
		regions.Routing(m.region), puuid)

	params := map[string]string{
		"count": strconv.Itoa(count),
	}
	if queue != 0 {
		params["queue"] = strconv.Itoa(queue)
	}

	resp, err := requests.AuthRequest(reqUrl, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return matchIds, nil
}

// GetMatchData retrieves a given match full data.
func (m *MatchFetcher) GetMatchData(matchId string) (*MatchData, error) {
	m.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		regions.Routing(m.region), matchId)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var match MatchData
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &match, nil
}
