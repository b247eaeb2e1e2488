package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client is a Yahoo Finance API client
type Client struct {
	// BaseURL can be overridden in tests
	BaseURL string

	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "yahoo").Logger(),
	}
}

// yahooQuoteResponse represents the response from Yahoo Finance quote API
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuote fetches the quote snapshot for a symbol
func (c *Client) GetQuote(symbol string) (*Quote, error) {
	info, err := c.getQuoteInfo(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote info: %w", err)
	}

	// Try currentPrice first, then regularMarketPrice
	price := getFloat64(info, "currentPrice")
	if price == nil {
		price = getFloat64(info, "regularMarketPrice")
	}

	// Same preference order for the display name
	name := getStringPtr(info, "longName")
	if name == nil {
		name = getStringPtr(info, "shortName")
	}

	return &Quote{
		Symbol:            symbol,
		Price:             price,
		MarketCap:         getFloat64(info, "marketCap"),
		Beta:              getFloat64(info, "beta"),
		SharesOutstanding: getFloat64(info, "sharesOutstanding"),
		FiftyTwoWeekHigh:  getFloat64(info, "fiftyTwoWeekHigh"),
		FiftyTwoWeekLow:   getFloat64(info, "fiftyTwoWeekLow"),
		EnterpriseValue:   getFloat64(info, "enterpriseValue"),
		TrailingPE:        getFloat64(info, "trailingPE"),
		ForwardPE:         getFloat64(info, "forwardPE"),
		DividendYield:     getFloat64(info, "dividendYield"),
		Name:              name,
		Sector:            getStringPtr(info, "sector"),
		Industry:          getStringPtr(info, "industry"),
	}, nil
}

// getQuoteInfo fetches quote information from Yahoo Finance API
func (c *Client) getQuoteInfo(symbol string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", "symbol,regularMarketPrice,currentPrice,marketCap,beta,sharesOutstanding,"+
		"fiftyTwoWeekHigh,fiftyTwoWeekLow,enterpriseValue,trailingPE,forwardPE,dividendYield,"+
		"longName,shortName,sector,industry,quoteType")

	reqURL := c.BaseURL + "/v7/finance/quote?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result yahooQuoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// GetAnnualFundamentals fetches annual fundamentals from the
// fundamentals-timeseries API for the requested metric types. The result
// maps metric type to fiscal-year series; metrics the provider has no data
// for are simply absent.
func (c *Client) GetAnnualFundamentals(symbol string, metrics []string) (map[string]AnnualSeries, error) {
	now := time.Now()
	params := url.Values{}
	params.Add("symbol", symbol)
	params.Add("type", strings.Join(metrics, ","))
	// Six years back covers five full fiscal years
	params.Add("period1", strconv.FormatInt(now.AddDate(-6, 0, 0).Unix(), 10))
	params.Add("period2", strconv.FormatInt(now.Unix(), 10))

	reqURL := c.BaseURL + "/ws/fundamentals-timeseries/v1/finance/timeseries/" + url.PathEscape(symbol) + "?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fundamentals: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result struct {
		Timeseries struct {
			Result []json.RawMessage `json:"result"`
			Error  interface{}       `json:"error"`
		} `json:"timeseries"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Timeseries.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.Timeseries.Error)
	}

	series := make(map[string]AnnualSeries)
	for _, raw := range result.Timeseries.Result {
		metric, annual := parseTimeseriesResult(raw)
		if metric == "" || len(annual) == 0 {
			continue
		}
		series[metric] = annual
	}

	c.log.Debug().
		Str("symbol", symbol).
		Int("metrics", len(series)).
		Msg("Fetched annual fundamentals")

	return series, nil
}

// parseTimeseriesResult extracts one metric's annual values. Each result
// object carries its metric name in meta.type and the data points under a
// field named after the metric.
func parseTimeseriesResult(raw json.RawMessage) (string, AnnualSeries) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", nil
	}

	var meta struct {
		Type []string `json:"type"`
	}
	if err := json.Unmarshal(fields["meta"], &meta); err != nil || len(meta.Type) == 0 {
		return "", nil
	}
	metric := meta.Type[0]

	pointsRaw, ok := fields[metric]
	if !ok {
		return metric, nil
	}

	// Yahoo pads missing years with nulls
	var points []*struct {
		AsOfDate      string `json:"asOfDate"`
		ReportedValue *struct {
			Raw float64 `json:"raw"`
		} `json:"reportedValue"`
	}
	if err := json.Unmarshal(pointsRaw, &points); err != nil {
		return metric, nil
	}

	annual := make(AnnualSeries)
	for _, p := range points {
		if p == nil || p.ReportedValue == nil || len(p.AsOfDate) < 4 {
			continue
		}
		year, err := strconv.Atoi(p.AsOfDate[:4])
		if err != nil {
			continue
		}
		annual[year] = p.ReportedValue.Raw
	}

	return metric, annual
}

// Helper functions to safely extract values from map

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func getStringPtr(m map[string]interface{}, key string) *string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok && s != "" {
			return &s
		}
	}
	return nil
}
