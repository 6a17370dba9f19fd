package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Client is a thin HTTP client for the blogbot API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The generate call streams, so no
// client-level timeout is set; pass a context to bound it.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// GenerateRequest mirrors the API request body.
type GenerateRequest struct {
	Topic          string `json:"topic"`
	UseSearchCache bool   `json:"use_search_cache"`
	UseScrapeCache bool   `json:"use_scrape_cache"`
	UseCachedPost  bool   `json:"use_cached_post"`
}

// StreamEvent carries one chunk of generated text, or a terminal error.
type StreamEvent struct {
	Chunk string
	Err   error
}

// Generate starts a generation run and streams the response body. The
// returned channel is closed when the stream ends; a terminal failure is
// delivered as the final event.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (<-chan StreamEvent, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/blog/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to start generation: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}

	events := make(chan StreamEvent)
	go func() {
		defer close(events)
		defer resp.Body.Close()

		buf := make([]byte, 4096)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				events <- StreamEvent{Chunk: string(buf[:n])}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				events <- StreamEvent{Err: err}
				return
			}
		}
	}()

	return events, nil
}
