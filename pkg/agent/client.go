// Package agent is an HTTP client for the local desktop agent, which can
// search the user's drive for files/apps and open the best match.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Match is one ranked file/app hit from the agent.
type Match struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	LastModified string `json:"last_modified"`
}

// OpenStatus reports the outcome of an open request. Status is "opened",
// "not_found", or "error".
type OpenStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type searchResponse struct {
	Matches []Match `json:"matches"`
}

type openRequest struct {
	Query string `json:"query"`
}

// SearchFile asks the agent for files/apps matching query, best first.
func (c *Client) SearchFile(ctx context.Context, query string) ([]Match, error) {
	var resp searchResponse
	if err := c.post(ctx, "/agent/search_file", searchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// Open asks the agent to open the file or app matching query.
func (c *Client) Open(ctx context.Context, query string) (*OpenStatus, error) {
	var resp OpenStatus
	if err := c.post(ctx, "/agent/open", openRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("agent request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("agent error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
