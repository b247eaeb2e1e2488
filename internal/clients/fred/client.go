// Package fred wraps the St. Louis Fed FRED API, used for the 10-year
// Treasury constant maturity series (DGS10).
package fred

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.stlouisfed.org"

// SeriesDGS10 is the 10-Year Treasury Constant Maturity Rate.
const SeriesDGS10 = "DGS10"

// Client is a FRED API client
type Client struct {
	// BaseURL can be overridden in tests
	BaseURL string

	apiKey string
	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a new FRED client
func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "fred").Logger(),
	}
}

type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// LatestValue returns the most recent non-null observation of a series.
// FRED reports missing observations as ".".
func (c *Client) LatestValue(seriesID string) (float64, error) {
	if c.apiKey == "" {
		return 0, fmt.Errorf("FRED API key not configured")
	}

	params := url.Values{}
	params.Add("series_id", seriesID)
	params.Add("api_key", c.apiKey)
	params.Add("file_type", "json")
	params.Add("sort_order", "desc")
	// A short window is enough; only the latest value is wanted and
	// holidays leave gaps
	params.Add("limit", "10")

	reqURL := c.BaseURL + "/fred/series/observations?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch series %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("FRED API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var result observationsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	for _, obs := range result.Observations {
		if obs.Value == "." || obs.Value == "" {
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		c.log.Debug().Str("series", seriesID).Str("date", obs.Date).Float64("value", value).Msg("Fetched observation")
		return value, nil
	}

	return 0, fmt.Errorf("no valid observations for series %s", seriesID)
}
