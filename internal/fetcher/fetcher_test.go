package fetcher

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/dcf-builder/internal/cache"
	"github.com/aristath/dcf-builder/internal/clients/yahoo"
	"github.com/aristath/dcf-builder/internal/config"
)

type fakeMarket struct {
	quote        *yahoo.Quote
	quoteErr     error
	quoteCalls   int
	fundamentals map[string]yahoo.AnnualSeries
	fundErr      error
}

func (m *fakeMarket) GetQuote(symbol string) (*yahoo.Quote, error) {
	m.quoteCalls++
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}
	return m.quote, nil
}

func (m *fakeMarket) GetAnnualFundamentals(symbol string, metrics []string) (map[string]yahoo.AnnualSeries, error) {
	if m.fundErr != nil {
		return nil, m.fundErr
	}
	return m.fundamentals, nil
}

type fakeRates struct {
	value float64
	err   error
}

func (r *fakeRates) LatestValue(seriesID string) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.value, nil
}

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func testConfig() *config.Config {
	return &config.Config{
		TTLMarketData:     15 * time.Minute,
		TTLHistorical:     24 * time.Hour,
		TTLTreasury:       time.Hour,
		EquityRiskPremium: 0.055,
		TaxRate:           0.21,
		CostOfDebt:        0.05,
		ProjectionYears:   5,
	}
}

func appleQuote() *yahoo.Quote {
	return &yahoo.Quote{
		Symbol:            "AAPL",
		Price:             fptr(150.0),
		MarketCap:         fptr(2.5e12),
		Beta:              fptr(1.2),
		SharesOutstanding: fptr(16e9),
		FiftyTwoWeekHigh:  fptr(180.0),
		FiftyTwoWeekLow:   fptr(120.0),
		Name:              sptr("Apple Inc."),
		Sector:            sptr("Technology"),
	}
}

func appleFundamentals() map[string]yahoo.AnnualSeries {
	return map[string]yahoo.AnnualSeries{
		yahoo.MetricTotalRevenue: {2021: 365e9, 2022: 394e9, 2023: 383e9},
		yahoo.MetricEBITDA:       {2021: 120e9, 2022: 130e9, 2023: 126e9},
		yahoo.MetricTotalDebt:    {2022: 120e9, 2023: 111e9},
		yahoo.MetricCash:         {2023: 30e9},
	}
}

func newTestFetcher(t *testing.T, market *fakeMarket, rates *fakeRates) *Fetcher {
	t.Helper()
	c, err := cache.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return New(market, rates, c, testConfig(), zerolog.Nop())
}

func TestStockInfo(t *testing.T) {
	market := &fakeMarket{quote: appleQuote()}
	f := newTestFetcher(t, market, &fakeRates{value: 4.0})

	info, err := f.StockInfo("aapl")
	require.NoError(t, err)

	require.NotNil(t, info.Price)
	assert.Equal(t, 150.0, *info.Price)
	assert.Equal(t, "Apple Inc.", info.DisplayName("AAPL"))

	// Second call within TTL is served from cache.
	_, err = f.StockInfo("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 1, market.quoteCalls)
}

func TestStockInfoStaleFallback(t *testing.T) {
	market := &fakeMarket{quote: appleQuote()}
	f := newTestFetcher(t, market, &fakeRates{value: 4.0})

	_, err := f.StockInfo("AAPL")
	require.NoError(t, err)

	// Expire the cache and break the provider.
	f.cfg.TTLMarketData = 0
	market.quoteErr = errors.New("rate limited")

	info, err := f.StockInfo("AAPL")
	require.NoError(t, err)
	require.NotNil(t, info.Price)
	assert.Equal(t, 150.0, *info.Price)
}

func TestStockInfoErrorWithoutCache(t *testing.T) {
	market := &fakeMarket{quoteErr: errors.New("connection refused")}
	f := newTestFetcher(t, market, &fakeRates{value: 4.0})

	_, err := f.StockInfo("AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch data for AAPL")
}

func TestMarketCapInMillions(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{quote: appleQuote()}, &fakeRates{value: 4.0})

	mc, err := f.MarketCap("AAPL")
	require.NoError(t, err)
	require.NotNil(t, mc)
	assert.Equal(t, 2.5e6, *mc)
}

func TestMarketCapMissing(t *testing.T) {
	quote := appleQuote()
	quote.MarketCap = nil
	f := newTestFetcher(t, &fakeMarket{quote: quote}, &fakeRates{value: 4.0})

	mc, err := f.MarketCap("AAPL")
	require.NoError(t, err)
	assert.Nil(t, mc)
}

func TestRiskFreeRate(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{}, &fakeRates{value: 4.61})

	// FRED reports percent; the accessor converts to decimal.
	assert.InDelta(t, 0.0461, f.RiskFreeRate(), 1e-12)
}

func TestRiskFreeRateDefaultOnError(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{}, &fakeRates{err: errors.New("api error")})

	assert.Equal(t, DefaultRiskFreeRate, f.RiskFreeRate())
}

func TestRiskFreeRateStaleBeatsDefault(t *testing.T) {
	rates := &fakeRates{value: 4.2}
	f := newTestFetcher(t, &fakeMarket{}, rates)

	require.InDelta(t, 0.042, f.RiskFreeRate(), 1e-12)

	f.cfg.TTLTreasury = 0
	rates.err = errors.New("api error")

	assert.InDelta(t, 0.042, f.RiskFreeRate(), 1e-12)
}

func TestHistoricalFinancials(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{quote: appleQuote(), fundamentals: appleFundamentals()}, &fakeRates{value: 4.0})

	h, err := f.HistoricalFinancials("AAPL")
	require.NoError(t, err)

	assert.Equal(t, []int{2021, 2022, 2023}, h.Years)
	assert.Equal(t, 2023, h.LatestYear())

	is := h.IncomeStatement[2023]
	require.NotNil(t, is.Revenue)
	assert.Equal(t, 383e9, *is.Revenue)
	assert.Nil(t, is.NetIncome) // metric absent from provider

	bs := h.LatestBalanceSheet()
	require.NotNil(t, bs)
	require.NotNil(t, bs.TotalDebt)
	assert.Equal(t, 111e9, *bs.TotalDebt)
}

func TestHistoricalFinancialsKeepsFiveYears(t *testing.T) {
	fundamentals := map[string]yahoo.AnnualSeries{
		yahoo.MetricTotalRevenue: {2017: 1, 2018: 2, 2019: 3, 2020: 4, 2021: 5, 2022: 6, 2023: 7},
	}
	f := newTestFetcher(t, &fakeMarket{fundamentals: fundamentals}, &fakeRates{value: 4.0})

	h, err := f.HistoricalFinancials("AAPL")
	require.NoError(t, err)
	assert.Equal(t, []int{2019, 2020, 2021, 2022, 2023}, h.Years)
}

func TestHistoricalFinancialsErrorWithoutCache(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{fundErr: errors.New("timeout")}, &fakeRates{value: 4.0})

	_, err := f.HistoricalFinancials("AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch financials for AAPL")
}

func TestRevenueAndEBITDAForYear(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{fundamentals: appleFundamentals()}, &fakeRates{value: 4.0})

	revenue, err := f.Revenue("AAPL", 2022)
	require.NoError(t, err)
	require.NotNil(t, revenue)
	assert.Equal(t, 394e9, *revenue)

	ebitda, err := f.EBITDA("AAPL", 2023)
	require.NoError(t, err)
	require.NotNil(t, ebitda)
	assert.Equal(t, 126e9, *ebitda)

	missing, err := f.Revenue("AAPL", 1999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWACC(t *testing.T) {
	f := newTestFetcher(t, &fakeMarket{quote: appleQuote(), fundamentals: appleFundamentals()}, &fakeRates{value: 4.0})

	wacc, err := f.WACC("AAPL")
	require.NoError(t, err)
	require.NotNil(t, wacc)

	// Sanity bound for representative CAPM inputs.
	assert.Greater(t, *wacc, 0.0)
	assert.Less(t, *wacc, 0.30)
}

func TestWACCNilWhenBetaMissing(t *testing.T) {
	quote := appleQuote()
	quote.Beta = nil
	f := newTestFetcher(t, &fakeMarket{quote: quote, fundamentals: appleFundamentals()}, &fakeRates{value: 4.0})

	wacc, err := f.WACC("AAPL")
	require.NoError(t, err)
	assert.Nil(t, wacc)
}

func TestWACCZeroCapitalFallsBackToCostOfEquity(t *testing.T) {
	quote := appleQuote()
	quote.MarketCap = fptr(0)
	fundamentals := map[string]yahoo.AnnualSeries{
		yahoo.MetricTotalRevenue: {2023: 1e9},
	}
	f := newTestFetcher(t, &fakeMarket{quote: quote, fundamentals: fundamentals}, &fakeRates{value: 4.0})

	wacc, err := f.WACC("AAPL")
	require.NoError(t, err)
	require.NotNil(t, wacc)

	// Ke = 0.04 + 1.2 × 0.055
	assert.InDelta(t, 0.106, *wacc, 1e-9)
}

func TestClearCache(t *testing.T) {
	market := &fakeMarket{quote: appleQuote()}
	f := newTestFetcher(t, market, &fakeRates{value: 4.0})

	_, err := f.StockInfo("AAPL")
	require.NoError(t, err)
	require.NoError(t, f.ClearCache())

	_, err = f.StockInfo("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2, market.quoteCalls)
}
