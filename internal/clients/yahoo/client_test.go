package yahoo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(zerolog.Nop())
	client.BaseURL = server.URL
	return client
}

func TestGetQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v7/finance/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"quoteResponse": {
				"result": [{
					"symbol": "AAPL",
					"currentPrice": 150.0,
					"marketCap": 2500000000000,
					"beta": 1.2,
					"sharesOutstanding": 16000000000,
					"fiftyTwoWeekHigh": 180.0,
					"fiftyTwoWeekLow": 120.0,
					"enterpriseValue": 2600000000000,
					"trailingPE": 25.5,
					"longName": "Apple Inc.",
					"sector": "Technology"
				}],
				"error": null
			}
		}`))
	})

	quote, err := client.GetQuote("AAPL")
	require.NoError(t, err)

	require.NotNil(t, quote.Price)
	assert.Equal(t, 150.0, *quote.Price)
	require.NotNil(t, quote.MarketCap)
	assert.Equal(t, 2.5e12, *quote.MarketCap)
	require.NotNil(t, quote.Beta)
	assert.Equal(t, 1.2, *quote.Beta)
	require.NotNil(t, quote.Name)
	assert.Equal(t, "Apple Inc.", *quote.Name)
	require.NotNil(t, quote.Sector)
	assert.Equal(t, "Technology", *quote.Sector)

	// Omitted fields stay nil
	assert.Nil(t, quote.ForwardPE)
	assert.Nil(t, quote.DividendYield)
	assert.Nil(t, quote.Industry)
}

func TestGetQuoteFallsBackToRegularMarketPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"quoteResponse": {
				"result": [{"symbol": "AAPL", "regularMarketPrice": 149.5, "shortName": "Apple"}],
				"error": null
			}
		}`))
	})

	quote, err := client.GetQuote("AAPL")
	require.NoError(t, err)
	require.NotNil(t, quote.Price)
	assert.Equal(t, 149.5, *quote.Price)
	require.NotNil(t, quote.Name)
	assert.Equal(t, "Apple", *quote.Name)
}

func TestGetQuoteNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quoteResponse": {"result": [], "error": null}}`))
	})

	_, err := client.GetQuote("NOPE")
	assert.ErrorContains(t, err, "no quote data")
}

func TestGetQuoteServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetQuote("AAPL")
	assert.ErrorContains(t, err, "status 429")
}

func TestGetAnnualFundamentals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/ws/fundamentals-timeseries/v1/finance/timeseries/AAPL")
		assert.Contains(t, r.URL.Query().Get("type"), "annualTotalRevenue")

		_, _ = w.Write([]byte(`{
			"timeseries": {
				"result": [
					{
						"meta": {"symbol": ["AAPL"], "type": ["annualTotalRevenue"]},
						"annualTotalRevenue": [
							null,
							{"asOfDate": "2022-09-30", "reportedValue": {"raw": 394328000000, "fmt": "394.33B"}},
							{"asOfDate": "2023-09-30", "reportedValue": {"raw": 383285000000, "fmt": "383.29B"}}
						]
					},
					{
						"meta": {"symbol": ["AAPL"], "type": ["annualTotalDebt"]},
						"annualTotalDebt": [
							{"asOfDate": "2023-09-30", "reportedValue": {"raw": 111088000000, "fmt": "111.09B"}}
						]
					}
				],
				"error": null
			}
		}`))
	})

	series, err := client.GetAnnualFundamentals("AAPL", []string{MetricTotalRevenue, MetricTotalDebt})
	require.NoError(t, err)

	revenue := series[MetricTotalRevenue]
	require.NotNil(t, revenue)
	assert.Equal(t, 394328000000.0, revenue[2022])
	assert.Equal(t, 383285000000.0, revenue[2023])

	debt := series[MetricTotalDebt]
	require.NotNil(t, debt)
	assert.Equal(t, 111088000000.0, debt[2023])
}

func TestGetAnnualFundamentalsEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"timeseries": {"result": [], "error": null}}`))
	})

	series, err := client.GetAnnualFundamentals("AAPL", AllFundamentalMetrics)
	require.NoError(t, err)
	assert.Empty(t, series)
}
