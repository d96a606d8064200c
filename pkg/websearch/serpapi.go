// Package websearch wraps SerpAPI's Google engine for top-N web lookups.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is one organic web search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type SerpAPIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:  apiKey,
		baseURL: "https://serpapi.com/search",
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type serpResponse struct {
	OrganicResults []Result `json:"organic_results"`
}

// Search returns up to num organic results for query.
func (c *SerpAPIClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("serpapi key not configured")
	}
	if num <= 0 {
		num = 5
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("engine", "google")
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(parsed.OrganicResults) > num {
		parsed.OrganicResults = parsed.OrganicResults[:num]
	}
	return parsed.OrganicResults, nil
}
