// Package fetch is the HTTP collaborator used by the source parsers. It
// owns transport concerns (user agent, timeout, status handling); the
// parsers only see text or an error.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	appLog "hamcal/internal/log"
)

// ErrNotFound signals a 404 response. The hamfest parser treats it as a
// pagination stop rather than a failure.
var ErrNotFound = errors.New("not found")

// Client fetches remote text documents.
type Client struct {
	hc        *http.Client
	userAgent string
}

// NewClient creates a Client with the given User-Agent and per-request
// timeout. A non-positive timeout defaults to 30 seconds.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// GetText performs a GET and returns the response body as text.
// A 404 returns ErrNotFound; any other non-2xx status is an error.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	appLog.Debug("fetch start", "url", url)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("fetch %s: %w", url, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", url, err)
	}

	appLog.Debug("fetch done", "url", url, "bytes", len(body))
	return string(body), nil
}
