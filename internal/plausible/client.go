package plausible

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// UpstreamError reports a non-2xx response from the Plausible API.
type UpstreamError struct {
	StatusCode int
	StatusText string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Plausible API error: %s", e.StatusText)
}

// Client issues stats queries against one Plausible instance.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a client around the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type queryBody struct {
	SiteID    string   `json:"site_id"`
	Metrics   []string `json:"metrics"`
	DateRange string   `json:"date_range"`
}

// Query posts one stats query and returns the raw JSON response.
// Non-2xx statuses surface as *UpstreamError.
func (c *Client) Query(ctx context.Context, siteID string, metrics []string, dateRange string) (json.RawMessage, error) {
	body, err := json.Marshal(queryBody{SiteID: siteID, Metrics: metrics, DateRange: dateRange})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	url := c.cfg.BaseURL + "/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call plausible: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return raw, nil
}
