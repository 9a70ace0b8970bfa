package challengesfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/fetcher/requests"
)

// The challenges fetcher with it's limiter and region.
type ChallengesFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a challenges fetcher.
func CreateChallengesFetcher(limiter *requests.RateLimiter, region string) *ChallengesFetcher {
	return &ChallengesFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetPlayerChallenges retrieves the full challenge progression of a player.
// A 404 is treated as no challenge data, not as a error.
func (c *ChallengesFetcher) GetPlayerChallenges(puuid string) (*PlayerChallenges, error) {
	c.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/challenges/v1/player-data/%s",
		c.region, puuid)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Players without challenge data just get a empty result downstream.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var challenges PlayerChallenges
	if err := json.NewDecoder(resp.Body).Decode(&challenges); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &challenges, nil
}
