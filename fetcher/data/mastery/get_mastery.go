package masteryfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/fetcher/requests"
)

// The mastery fetcher with it's limiter and region.
type MasteryFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a mastery fetcher.
func CreateMasteryFetcher(limiter *requests.RateLimiter, region string) *MasteryFetcher {
	return &MasteryFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetMasteriesByPuuid retrieves every champion mastery record for a player.
// The API already returns them ordered by mastery points descending.
func (m *MasteryFetcher) GetMasteriesByPuuid(puuid string) ([]MasteryEntry, error) {
	m.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s",
		m.region, puuid)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var masteries []MasteryEntry
	if err := json.NewDecoder(resp.Body).Decode(&masteries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return masteries, nil
}
