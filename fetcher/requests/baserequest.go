package requests

import (
	"errors"
	"fmt"
	"net/http"
	"riftstats/pkg/config"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

// AuthRequest does a authenticated request to the Riot API.
// Return the response.
func AuthRequest(url string, method string, params map[string]string) (*http.Response, error) {
	// Create the request for the given url.
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if config.ApiKey == "" {
		return nil, errors.New("can't do a authenticated request without the API Key")
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.ApiKey)

	// Add any query parameters.
	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return client.Do(req)
}

// Request creates a simple request and return it.
func Request(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return client.Do(req)
}
