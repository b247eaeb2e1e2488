package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/dcf-builder/internal/cache"
	"github.com/aristath/dcf-builder/internal/clients/yahoo"
	"github.com/aristath/dcf-builder/internal/config"
	"github.com/aristath/dcf-builder/internal/fetcher"
)

type fakeMarket struct {
	quoteCalls int
}

func (f *fakeMarket) GetQuote(symbol string) (*yahoo.Quote, error) {
	f.quoteCalls++
	price := 100.0
	return &yahoo.Quote{Symbol: symbol, Price: &price}, nil
}

func (f *fakeMarket) GetAnnualFundamentals(symbol string, metrics []string) (map[string]yahoo.AnnualSeries, error) {
	return map[string]yahoo.AnnualSeries{}, nil
}

type fakeRates struct {
	calls int
}

func (f *fakeRates) LatestValue(seriesID string) (float64, error) {
	f.calls++
	return 4.25, nil
}

func testFetcher(t *testing.T, market *fakeMarket, rates *fakeRates) *fetcher.Fetcher {
	t.Helper()
	c, err := cache.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	cfg := &config.Config{
		TTLMarketData: 15 * time.Minute,
		TTLHistorical: 24 * time.Hour,
		TTLTreasury:   time.Hour,
	}
	return fetcher.New(market, rates, c, cfg, zerolog.Nop())
}

func TestRiskFreeRefreshJob(t *testing.T) {
	rates := &fakeRates{}
	job := NewRiskFreeRefreshJob(testFetcher(t, &fakeMarket{}, rates), zerolog.Nop())

	assert.Equal(t, "risk_free_refresh", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, 1, rates.calls)
}

func TestQuoteWarmJob(t *testing.T) {
	market := &fakeMarket{}
	job := NewQuoteWarmJob(testFetcher(t, market, &fakeRates{}), []string{"AAPL", "MSFT"}, zerolog.Nop())

	assert.Equal(t, "quote_warm", job.Name())
	require.NoError(t, job.Run())
	assert.Equal(t, 2, market.quoteCalls)
}

func TestQuoteWarmJobNoTickers(t *testing.T) {
	market := &fakeMarket{}
	job := NewQuoteWarmJob(testFetcher(t, market, &fakeRates{}), nil, zerolog.Nop())

	require.NoError(t, job.Run())
	assert.Equal(t, 0, market.quoteCalls)
}
