package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/aristath/dcf-builder/internal/fetcher"
)

// RiskFreeRefreshJob keeps the treasury rate cache warm so spreadsheet
// lookups never wait on FRED.
type RiskFreeRefreshJob struct {
	fetcher *fetcher.Fetcher
	log     zerolog.Logger
}

func NewRiskFreeRefreshJob(f *fetcher.Fetcher, log zerolog.Logger) *RiskFreeRefreshJob {
	return &RiskFreeRefreshJob{
		fetcher: f,
		log:     log.With().Str("job", "risk_free_refresh").Logger(),
	}
}

func (j *RiskFreeRefreshJob) Name() string { return "risk_free_refresh" }

func (j *RiskFreeRefreshJob) Run() error {
	rate := j.fetcher.RiskFreeRate()
	j.log.Debug().Float64("rate", rate).Msg("Risk-free rate refreshed")
	return nil
}

// QuoteWarmJob re-fetches quotes for a watch list so the market-data
// cache stays inside its TTL during trading hours.
type QuoteWarmJob struct {
	fetcher *fetcher.Fetcher
	tickers []string
	log     zerolog.Logger
}

func NewQuoteWarmJob(f *fetcher.Fetcher, tickers []string, log zerolog.Logger) *QuoteWarmJob {
	return &QuoteWarmJob{
		fetcher: f,
		tickers: tickers,
		log:     log.With().Str("job", "quote_warm").Logger(),
	}
}

func (j *QuoteWarmJob) Name() string { return "quote_warm" }

func (j *QuoteWarmJob) Run() error {
	if len(j.tickers) == 0 {
		return nil
	}
	j.fetcher.WarmTickers(j.tickers)
	j.log.Debug().Int("tickers", len(j.tickers)).Msg("Quote cache warmed")
	return nil
}
