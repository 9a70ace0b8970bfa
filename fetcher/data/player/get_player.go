package playerfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"riftstats/fetcher/regions"
	"riftstats/fetcher/requests"
)

// The player fetcher with it's limiter and region.
type PlayerFetcher struct {
	limiter *requests.RateLimiter
	region  string
}

// Create a player fetcher.
func CreatePlayerFetcher(limiter *requests.RateLimiter, region string) *PlayerFetcher {
	return &PlayerFetcher{
		limiter: limiter,
		region:  region,
	}
}

// GetAccountByRiotId resolves a gameName/tagLine pair into a account with it's puuid.
func (p *PlayerFetcher) GetAccountByRiotId(gameName string, tagLine string) (*Account, error) {
	p.limiter.Wait()

	// Account endpoints live on the continental routing.
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		regions.Routing(p.region), url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	// Parse the account.
	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &account, nil
}

// GetSummonerByPuuid retrieves the summoner data (level and profile icon).
func (p *PlayerFetcher) GetSummonerByPuuid(puuid string) (*SummonerByPuuid, error) {
	p.limiter.Wait()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		p.region, puuid)

	resp, err := requests.AuthRequest(reqUrl, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var summoner SummonerByPuuid
	if err := json.NewDecoder(resp.Body).Decode(&summoner); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &summoner, nil
}
