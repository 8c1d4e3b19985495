package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// RateClient fetches exchange rates from a rate service over HTTP.
type RateClient struct {
	baseURL string
	client  *http.Client
}

func NewRateClient(baseURL string, client *http.Client) *RateClient {
	return &RateClient{
		baseURL: baseURL,
		client:  client,
	}
}

type rateResponse struct {
	Rate float64 `json:"rate"`
}

func (c *RateClient) Rate(ctx context.Context, base, target string) (float64, error) {
	q := url.Values{}
	q.Set("base", base)
	q.Set("target", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rates?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch rate %s->%s: %w", base, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode rate response: %w", err)
	}

	if body.Rate <= 0 {
		return 0, fmt.Errorf("rate service returned non-positive rate %v", body.Rate)
	}

	return body.Rate, nil
}

var _ RateSource = (*RateClient)(nil)
