package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = http.Client{Timeout: 12 * time.Second}

// GetBytes fetches a URL and returns the response body. The request is
// scoped to ctx on top of the client's overall timeout.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
