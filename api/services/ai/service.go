package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"riftstats/api/dto"
	"time"
)

// InsightService forwards assembled payloads to the external AI
// summarization endpoint and relays the answer.
type InsightService struct {
	endpoint string
	client   *http.Client
}

// InsightServiceDeps is the dependency list for the insight service.
type InsightServiceDeps struct {
	Endpoint string
	Timeout  time.Duration
}

// NewInsightService creates a insight service.
func NewInsightService(deps *InsightServiceDeps) *InsightService {
	timeout := deps.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &InsightService{
		endpoint: deps.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// summaryResponse is the shape the endpoint answers with.
type summaryResponse struct {
	Summary string `json:"summary"`
}

// Summarize posts the payload as the request body and returns the summary.
func (is *InsightService) Summarize(ctx context.Context, payload *dto.AggregatedPlayerPayload) (string, error) {
	if is.endpoint == "" {
		return "", errors.New("no insights endpoint configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("couldn't marshal the payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, is.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("couldn't create the request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := is.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("insights request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insights endpoint returned status code %d", resp.StatusCode)
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", fmt.Errorf("failed to parse the insights response: %w", err)
	}

	return summary.Summary, nil
}
