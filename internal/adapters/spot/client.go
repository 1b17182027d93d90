// Package spot fetches live EUR-based spot rates from the public currency API.
package spot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher loads the full EUR spot table from an upstream source.
type Fetcher interface {
	FetchEurSpots(ctx context.Context) (map[string]float64, error)
}

// currencyAPIClient reads the EUR table of the free currency API, trying each mirror in turn.
type currencyAPIClient struct {
	// urls are tried in order until one answers
	urls []string

	// client for HTTP requests
	client http.Client
}

// NewCurrencyAPIClient constructs a Fetcher over the primary URL and its fallback mirror.
func NewCurrencyAPIClient(primaryURL, fallbackURL string, timeout time.Duration) Fetcher {
	urls := make([]string, 0, 2)
	for _, u := range []string{primaryURL, fallbackURL} {
		if strings.TrimSpace(u) != "" {
			urls = append(urls, u)
		}
	}
	return &currencyAPIClient{
		urls: urls,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// FetchEurSpots returns upper-case code -> units of that currency per EUR.
func (c *currencyAPIClient) FetchEurSpots(ctx context.Context) (map[string]float64, error) {
	if len(c.urls) == 0 {
		return nil, errors.New("no spot source configured")
	}
	var errs []error
	for _, url := range c.urls {
		spots, err := c.fetch(ctx, url)
		if err == nil {
			return spots, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", url, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (c *currencyAPIClient) fetch(ctx context.Context, url string) (map[string]float64, error) {
	type Response struct {
		Date string         `json:"date"`
		Eur  map[string]any `json:"eur"` // lower-case code -> rate; non-numeric values are skipped
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	if err := json.Unmarshal(bytes, &response); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	spots := make(map[string]float64, len(response.Eur))
	for k, v := range response.Eur {
		if f, ok := v.(float64); ok && f > 0 {
			spots[strings.ToUpper(k)] = f
		}
	}
	return spots, nil
}
