// Package udf exposes spreadsheet-friendly wrappers around the data
// fetcher. Every function swallows errors and returns nil instead, so a
// formula cell degrades to blank rather than breaking recalculation.
package udf

import (
	"github.com/rs/zerolog"

	"github.com/aristath/dcf-builder/internal/fetcher"
)

// Source is the fetcher surface the UDF layer wraps.
type Source interface {
	Price(ticker string) (*float64, error)
	MarketCap(ticker string) (*float64, error)
	Beta(ticker string) (*float64, error)
	SharesOutstanding(ticker string) (*float64, error)
	FiftyTwoWeekHigh(ticker string) (*float64, error)
	FiftyTwoWeekLow(ticker string) (*float64, error)
	RiskFreeRate() float64
	Revenue(ticker string, year int) (*float64, error)
	EBITDA(ticker string, year int) (*float64, error)
	WACC(ticker string) (*float64, error)
	StockInfo(ticker string) (*fetcher.StockInfo, error)
}

// Service adapts a Source into never-failing lookups.
type Service struct {
	source Source
	log    zerolog.Logger
}

func New(source Source, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		log:    log.With().Str("component", "udf").Logger(),
	}
}

// swallow logs and discards a lookup error.
func (s *Service) swallow(fn, ticker string, err error) {
	if err != nil {
		s.log.Warn().Err(err).Str("function", fn).Str("ticker", ticker).Msg("UDF lookup failed")
	}
}

func (s *Service) Price(ticker string) *float64 {
	v, err := s.source.Price(ticker)
	s.swallow("price", ticker, err)
	return v
}

func (s *Service) MarketCap(ticker string) *float64 {
	v, err := s.source.MarketCap(ticker)
	s.swallow("market_cap", ticker, err)
	return v
}

func (s *Service) Beta(ticker string) *float64 {
	v, err := s.source.Beta(ticker)
	s.swallow("beta", ticker, err)
	return v
}

func (s *Service) SharesOutstanding(ticker string) *float64 {
	v, err := s.source.SharesOutstanding(ticker)
	s.swallow("shares_outstanding", ticker, err)
	return v
}

func (s *Service) FiftyTwoWeekHigh(ticker string) *float64 {
	v, err := s.source.FiftyTwoWeekHigh(ticker)
	s.swallow("high_52w", ticker, err)
	return v
}

func (s *Service) FiftyTwoWeekLow(ticker string) *float64 {
	v, err := s.source.FiftyTwoWeekLow(ticker)
	s.swallow("low_52w", ticker, err)
	return v
}

// RiskFreeRate never fails; the fetcher already falls back to its
// default when FRED is unreachable.
func (s *Service) RiskFreeRate() float64 {
	return s.source.RiskFreeRate()
}

// Revenue accepts a float year because spreadsheet numbers arrive as
// floats; the fractional part is truncated.
func (s *Service) Revenue(ticker string, year float64) *float64 {
	v, err := s.source.Revenue(ticker, int(year))
	s.swallow("revenue", ticker, err)
	return v
}

func (s *Service) EBITDA(ticker string, year float64) *float64 {
	v, err := s.source.EBITDA(ticker, int(year))
	s.swallow("ebitda", ticker, err)
	return v
}

func (s *Service) WACC(ticker string) *float64 {
	v, err := s.source.WACC(ticker)
	s.swallow("wacc", ticker, err)
	return v
}

func (s *Service) EnterpriseValue(ticker string) *float64 {
	info, err := s.source.StockInfo(ticker)
	s.swallow("enterprise_value", ticker, err)
	if info == nil {
		return nil
	}
	return info.EnterpriseValue
}

func (s *Service) TrailingPE(ticker string) *float64 {
	info, err := s.source.StockInfo(ticker)
	s.swallow("trailing_pe", ticker, err)
	if info == nil {
		return nil
	}
	return info.TrailingPE
}

func (s *Service) CompanyName(ticker string) string {
	info, err := s.source.StockInfo(ticker)
	s.swallow("company_name", ticker, err)
	if info == nil {
		return ""
	}
	return info.DisplayName(ticker)
}
