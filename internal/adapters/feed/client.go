// Package feed implements the HTTP client for the official national-bank
// rate feed. Parsing tolerance lives in the feed service; this client only
// fetches and decodes the document.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/centrifx/fxcore/internal/core/domain"
	portssvc "github.com/centrifx/fxcore/internal/core/ports/services"
)

// Client fetches the daily official feed document.
type Client struct {
	url    string
	logger *slog.Logger
	client http.Client
}

// NewClient constructs a feed client with a hard request timeout; the
// failure mode on timeout is "keep last known good rates" upstream.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:    url,
		logger: logger,
		client: http.Client{Timeout: timeout},
	}
}

var _ portssvc.FeedFetcher = (*Client)(nil)

// FetchDaily loads the current publication of the feed.
func (c *Client) FetchDaily(ctx context.Context) (*domain.FeedPayload, error) {
	c.logger.Debug("Fetching official rate feed", slog.String("url", c.url))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	var payload domain.FeedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return &payload, nil
}
