// Package fetcher composes the market-data and treasury-rate providers
// behind cached accessors and derives WACC from their outputs.
package fetcher

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/dcf-builder/internal/cache"
	"github.com/aristath/dcf-builder/internal/clients/fred"
	"github.com/aristath/dcf-builder/internal/clients/yahoo"
	"github.com/aristath/dcf-builder/internal/config"
	"github.com/aristath/dcf-builder/pkg/formulas"
)

// DefaultRiskFreeRate is used when the treasury feed fails and nothing is
// cached.
const DefaultRiskFreeRate = 0.04

// MarketDataClient is the equity market-data provider surface the fetcher
// needs.
type MarketDataClient interface {
	GetQuote(symbol string) (*yahoo.Quote, error)
	GetAnnualFundamentals(symbol string, metrics []string) (map[string]yahoo.AnnualSeries, error)
}

// RatesClient is the macro-data provider surface the fetcher needs.
type RatesClient interface {
	LatestValue(seriesID string) (float64, error)
}

// Fetcher wraps the external data providers behind cached accessors.
type Fetcher struct {
	market MarketDataClient
	rates  RatesClient
	cache  *cache.Cache
	cfg    *config.Config
	log    zerolog.Logger
}

// New creates a Fetcher.
func New(market MarketDataClient, rates RatesClient, c *cache.Cache, cfg *config.Config, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		market: market,
		rates:  rates,
		cache:  c,
		cfg:    cfg,
		log:    log.With().Str("component", "fetcher").Logger(),
	}
}

// StockInfo returns the market snapshot for a ticker. On provider failure
// a stale cached snapshot is returned when one exists.
func (f *Fetcher) StockInfo(ticker string) (*StockInfo, error) {
	ticker = normalizeTicker(ticker)
	key := "stock_info_" + ticker

	if raw, ok := f.cache.Get(key, f.cfg.TTLMarketData); ok {
		var info StockInfo
		if err := cache.Unmarshal(raw, &info); err == nil {
			return &info, nil
		}
	}

	quote, err := f.market.GetQuote(ticker)
	if err != nil {
		if raw, ok := f.cache.GetStale(key); ok {
			var info StockInfo
			if uerr := cache.Unmarshal(raw, &info); uerr == nil {
				f.log.Warn().Err(err).Str("ticker", ticker).Msg("Quote fetch failed, serving stale cache")
				return &info, nil
			}
		}
		return nil, fmt.Errorf("failed to fetch data for %s: %w", ticker, err)
	}

	info := quoteToStockInfo(quote)
	if err := f.cache.Set(key, info); err != nil {
		f.log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to cache stock info")
	}
	return info, nil
}

// Price returns the current price.
func (f *Fetcher) Price(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	return info.Price, nil
}

// MarketCap returns the market capitalization in millions.
func (f *Fetcher) MarketCap(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	if info.MarketCap == nil {
		return nil, nil
	}
	mc := *info.MarketCap / 1e6
	return &mc, nil
}

// Beta returns the 5-year monthly beta.
func (f *Fetcher) Beta(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	return info.Beta, nil
}

// SharesOutstanding returns the share count.
func (f *Fetcher) SharesOutstanding(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	return info.SharesOutstanding, nil
}

// FiftyTwoWeekHigh returns the 52-week high price.
func (f *Fetcher) FiftyTwoWeekHigh(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	return info.FiftyTwoWeekHigh, nil
}

// FiftyTwoWeekLow returns the 52-week low price.
func (f *Fetcher) FiftyTwoWeekLow(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}
	return info.FiftyTwoWeekLow, nil
}

// RiskFreeRate returns the latest 10-year Treasury rate as a decimal.
// Degradation order on provider failure: stale cache, then the hard
// default of 4%.
func (f *Fetcher) RiskFreeRate() float64 {
	const key = "risk_free_rate"

	if raw, ok := f.cache.Get(key, f.cfg.TTLTreasury); ok {
		var rate float64
		if err := cache.Unmarshal(raw, &rate); err == nil {
			return rate
		}
	}

	value, err := f.rates.LatestValue(fred.SeriesDGS10)
	if err != nil {
		if raw, ok := f.cache.GetStale(key); ok {
			var rate float64
			if uerr := cache.Unmarshal(raw, &rate); uerr == nil {
				f.log.Warn().Err(err).Msg("Treasury fetch failed, serving stale cache")
				return rate
			}
		}
		f.log.Warn().Err(err).Float64("default", DefaultRiskFreeRate).Msg("Treasury fetch failed, using default")
		return DefaultRiskFreeRate
	}

	rate := value / 100 // FRED reports percent
	if err := f.cache.Set(key, rate); err != nil {
		f.log.Warn().Err(err).Msg("Failed to cache risk-free rate")
	}
	return rate
}

// HistoricalFinancials returns up to five fiscal years of statements. On
// provider failure a stale cached copy is returned when one exists.
func (f *Fetcher) HistoricalFinancials(ticker string) (*HistoricalFinancials, error) {
	ticker = normalizeTicker(ticker)
	key := "financials_" + ticker

	if raw, ok := f.cache.Get(key, f.cfg.TTLHistorical); ok {
		var h HistoricalFinancials
		if err := cache.Unmarshal(raw, &h); err == nil {
			return &h, nil
		}
	}

	series, err := f.market.GetAnnualFundamentals(ticker, yahoo.AllFundamentalMetrics)
	if err != nil {
		if raw, ok := f.cache.GetStale(key); ok {
			var h HistoricalFinancials
			if uerr := cache.Unmarshal(raw, &h); uerr == nil {
				f.log.Warn().Err(err).Str("ticker", ticker).Msg("Fundamentals fetch failed, serving stale cache")
				return &h, nil
			}
		}
		return nil, fmt.Errorf("failed to fetch financials for %s: %w", ticker, err)
	}

	h := buildHistoricals(series)
	if err := f.cache.Set(key, h); err != nil {
		f.log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to cache financials")
	}
	return h, nil
}

// Revenue returns revenue for a specific fiscal year.
func (f *Fetcher) Revenue(ticker string, year int) (*float64, error) {
	h, err := f.HistoricalFinancials(ticker)
	if err != nil {
		return nil, err
	}
	if is, ok := h.IncomeStatement[year]; ok {
		return is.Revenue, nil
	}
	return nil, nil
}

// EBITDA returns EBITDA for a specific fiscal year.
func (f *Fetcher) EBITDA(ticker string, year int) (*float64, error) {
	h, err := f.HistoricalFinancials(ticker)
	if err != nil {
		return nil, err
	}
	if is, ok := h.IncomeStatement[year]; ok {
		return is.EBITDA, nil
	}
	return nil, nil
}

// WACC derives the weighted average cost of capital from the live
// snapshot, the latest balance sheet, and the risk-free rate. Missing beta
// or market cap makes the result nil rather than an error. The result
// itself is never cached; only its inputs are.
func (f *Fetcher) WACC(ticker string) (*float64, error) {
	info, err := f.StockInfo(ticker)
	if err != nil {
		return nil, err
	}

	financials, err := f.HistoricalFinancials(ticker)
	if err != nil {
		return nil, err
	}

	if info.Beta == nil || info.MarketCap == nil {
		return nil, nil
	}

	totalDebt := 0.0
	if bs := financials.LatestBalanceSheet(); bs != nil && bs.TotalDebt != nil {
		totalDebt = *bs.TotalDebt
	}

	result := formulas.CalculateWACC(formulas.WACCInput{
		Beta:              *info.Beta,
		RiskFreeRate:      f.RiskFreeRate(),
		EquityRiskPremium: f.cfg.EquityRiskPremium,
		MarketCap:         *info.MarketCap,
		TotalDebt:         totalDebt,
		CostOfDebt:        f.cfg.CostOfDebt,
		TaxRate:           f.cfg.TaxRate,
	})

	return &result.WACC, nil
}

// ClearCache drops every cached entry.
func (f *Fetcher) ClearCache() error {
	return f.cache.Clear()
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// WarmTickers refreshes the snapshot for each ticker, ignoring failures.
// Used by the serve-mode refresh jobs.
func (f *Fetcher) WarmTickers(tickers []string) {
	for _, ticker := range tickers {
		if _, err := f.StockInfo(ticker); err != nil {
			f.log.Warn().Err(err).Str("ticker", ticker).Msg("Warm refresh failed")
		}
	}
}
