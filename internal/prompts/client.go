// Package prompts fetches the writing-prompt list the booth page shows
// between shots. The backend is a plain JSON endpoint; responses are cached
// so page reloads do not hammer it.
package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Prompt is one writing prompt from the remote backend.
type Prompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Client fetches prompts from the configured backend with a TTL cache.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	ttl     time.Duration

	mu      sync.Mutex
	cached  []Prompt
	expires time.Time
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 12 * time.Second},
		ttl:     5 * time.Minute,
	}
}

// Fetch returns the prompt list, hitting the backend at most once per TTL
// window. Concurrent callers are serialized so only one request is in
// flight at a time.
func (c *Client) Fetch(ctx context.Context) ([]Prompt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Now().Before(c.expires) {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prompt backend: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prompt backend returned %s", resp.Status)
	}

	var body struct {
		Prompts []Prompt `json:"prompts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("prompt backend: %w", err)
	}

	c.cached = body.Prompts
	c.expires = time.Now().Add(c.ttl)
	return c.cached, nil
}
