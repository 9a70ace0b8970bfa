package clashfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/fetcher/requests"
)

// The clash fetcher with it's limiter and region.
type ClashFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a clash fetcher.
func CreateClashFetcher(limiter *requests.RateLimiter, region string) *ClashFetcher {
	return &ClashFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetClashHistory retrieves the clash participation blob for a player.
// The endpoint has shipped several historical shapes (a bare array or a
// object nesting the entries), so the raw decoded JSON is returned and
// normalization happens downstream.
func (c *ClashFetcher) GetClashHistory(puuid string) (any, error) {
	c.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/clash/v1/players/by-puuid/%s",
		c.region, puuid)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// No clash participation at all.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var blob any
	if err := json.NewDecoder(resp.Body).Decode(&blob); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return blob, nil
}
