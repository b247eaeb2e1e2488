package fetcher

import (
	"sort"

	"github.com/aristath/dcf-builder/internal/clients/yahoo"
)

// StockInfo is the cached snapshot of a ticker's market data. Every field
// is optional; the provider omits what it does not know.
type StockInfo struct {
	Price             *float64 `json:"price"`
	MarketCap         *float64 `json:"market_cap"`
	Beta              *float64 `json:"beta"`
	SharesOutstanding *float64 `json:"shares_outstanding"`
	FiftyTwoWeekHigh  *float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow   *float64 `json:"fifty_two_week_low"`
	EnterpriseValue   *float64 `json:"enterprise_value"`
	TrailingPE        *float64 `json:"trailing_pe"`
	ForwardPE         *float64 `json:"forward_pe"`
	DividendYield     *float64 `json:"dividend_yield"`
	Name              *string  `json:"name"`
	Sector            *string  `json:"sector"`
	Industry          *string  `json:"industry"`
}

// DisplayName returns the company name, falling back to the ticker.
func (s *StockInfo) DisplayName(ticker string) string {
	if s != nil && s.Name != nil && *s.Name != "" {
		return *s.Name
	}
	return ticker
}

// IncomeStatement holds one fiscal year of income-statement line items.
type IncomeStatement struct {
	Revenue     *float64 `json:"revenue"`
	GrossProfit *float64 `json:"gross_profit"`
	EBITDA      *float64 `json:"ebitda"`
	EBIT        *float64 `json:"ebit"`
	NetIncome   *float64 `json:"net_income"`
}

// BalanceSheet holds one fiscal year of balance-sheet line items.
type BalanceSheet struct {
	TotalAssets      *float64 `json:"total_assets"`
	TotalLiabilities *float64 `json:"total_liabilities"`
	TotalEquity      *float64 `json:"total_equity"`
	Cash             *float64 `json:"cash"`
	TotalDebt        *float64 `json:"total_debt"`
}

// HistoricalFinancials holds up to five fiscal years of statements keyed
// by year.
type HistoricalFinancials struct {
	Years           []int                   `json:"years"` // ascending
	IncomeStatement map[int]IncomeStatement `json:"income_statement"`
	BalanceSheet    map[int]BalanceSheet    `json:"balance_sheet"`
}

// LatestYear returns the most recent fiscal year, or 0 when empty.
func (h *HistoricalFinancials) LatestYear() int {
	if h == nil || len(h.Years) == 0 {
		return 0
	}
	return h.Years[len(h.Years)-1]
}

// LatestBalanceSheet returns the most recent year's balance sheet, or nil.
func (h *HistoricalFinancials) LatestBalanceSheet() *BalanceSheet {
	year := h.LatestYear()
	if year == 0 {
		return nil
	}
	if bs, ok := h.BalanceSheet[year]; ok {
		return &bs
	}
	return nil
}

// RevenueSeries returns revenue in chronological order for the years that
// have one.
func (h *HistoricalFinancials) RevenueSeries() []float64 {
	if h == nil {
		return nil
	}
	var out []float64
	for _, year := range h.Years {
		if is, ok := h.IncomeStatement[year]; ok && is.Revenue != nil {
			out = append(out, *is.Revenue)
		}
	}
	return out
}

// EBITDAMargins returns ebitda/revenue in chronological order for years
// where both are present and revenue is nonzero.
func (h *HistoricalFinancials) EBITDAMargins() []float64 {
	if h == nil {
		return nil
	}
	var out []float64
	for _, year := range h.Years {
		is, ok := h.IncomeStatement[year]
		if !ok || is.EBITDA == nil || is.Revenue == nil || *is.Revenue == 0 {
			continue
		}
		out = append(out, *is.EBITDA / *is.Revenue)
	}
	return out
}

const maxHistoryYears = 5

// buildHistoricals assembles HistoricalFinancials from provider metric
// series, keeping the five most recent fiscal years.
func buildHistoricals(series map[string]yahoo.AnnualSeries) *HistoricalFinancials {
	yearSet := make(map[int]struct{})
	for _, annual := range series {
		for year := range annual {
			yearSet[year] = struct{}{}
		}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	if len(years) > maxHistoryYears {
		years = years[len(years)-maxHistoryYears:]
	}

	get := func(metric string, year int) *float64 {
		if annual, ok := series[metric]; ok {
			if v, ok := annual[year]; ok {
				return &v
			}
		}
		return nil
	}

	h := &HistoricalFinancials{
		Years:           years,
		IncomeStatement: make(map[int]IncomeStatement, len(years)),
		BalanceSheet:    make(map[int]BalanceSheet, len(years)),
	}

	for _, year := range years {
		h.IncomeStatement[year] = IncomeStatement{
			Revenue:     get(yahoo.MetricTotalRevenue, year),
			GrossProfit: get(yahoo.MetricGrossProfit, year),
			EBITDA:      get(yahoo.MetricEBITDA, year),
			EBIT:        get(yahoo.MetricEBIT, year),
			NetIncome:   get(yahoo.MetricNetIncome, year),
		}
		h.BalanceSheet[year] = BalanceSheet{
			TotalAssets:      get(yahoo.MetricTotalAssets, year),
			TotalLiabilities: get(yahoo.MetricTotalLiabilities, year),
			TotalEquity:      get(yahoo.MetricTotalEquity, year),
			Cash:             get(yahoo.MetricCash, year),
			TotalDebt:        get(yahoo.MetricTotalDebt, year),
		}
	}

	return h
}

func quoteToStockInfo(q *yahoo.Quote) *StockInfo {
	return &StockInfo{
		Price:             q.Price,
		MarketCap:         q.MarketCap,
		Beta:              q.Beta,
		SharesOutstanding: q.SharesOutstanding,
		FiftyTwoWeekHigh:  q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:   q.FiftyTwoWeekLow,
		EnterpriseValue:   q.EnterpriseValue,
		TrailingPE:        q.TrailingPE,
		ForwardPE:         q.ForwardPE,
		DividendYield:     q.DividendYield,
		Name:              q.Name,
		Sector:            q.Sector,
		Industry:          q.Industry,
	}
}
