package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"listingWatcherBot/internal/domain/entity"
)

const (
	// DefaultUserAgent mimics a desktop browser; the marketplace rejects unbranded clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0 Safari/537.36"

	defaultTimeout = 25 * time.Second
	maxBodyBytes   = int64(4 * 1024 * 1024)
)

// Client issues single GET requests with a browser User-Agent. It never retries;
// the next watch cycle is the retry.
type Client struct {
	client    *http.Client
	userAgent string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get returns the response body. Transport failures and error statuses are
// reported as entity.ErrFetch.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", entity.ErrFetch, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch url: %w", entity.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: unexpected status code: %s", entity.ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", entity.ErrFetch, err)
	}

	return body, nil
}
