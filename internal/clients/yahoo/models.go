package yahoo

// Quote represents the snapshot fields used by the model. Fields the
// provider omits stay nil.
type Quote struct {
	Symbol            string   `json:"symbol"`
	Price             *float64 `json:"price,omitempty"`
	MarketCap         *float64 `json:"market_cap,omitempty"`
	Beta              *float64 `json:"beta,omitempty"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty"`
	FiftyTwoWeekHigh  *float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoWeekLow   *float64 `json:"fifty_two_week_low,omitempty"`
	EnterpriseValue   *float64 `json:"enterprise_value,omitempty"`
	TrailingPE        *float64 `json:"trailing_pe,omitempty"`
	ForwardPE         *float64 `json:"forward_pe,omitempty"`
	DividendYield     *float64 `json:"dividend_yield,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Sector            *string  `json:"sector,omitempty"`
	Industry          *string  `json:"industry,omitempty"`
}

// AnnualSeries maps fiscal year to a reported value.
type AnnualSeries map[int]float64

// Fundamental metric types understood by the timeseries API. Income
// statement first, then balance sheet.
const (
	MetricTotalRevenue     = "annualTotalRevenue"
	MetricGrossProfit      = "annualGrossProfit"
	MetricEBITDA           = "annualEBITDA"
	MetricEBIT             = "annualEBIT"
	MetricNetIncome        = "annualNetIncome"
	MetricTotalAssets      = "annualTotalAssets"
	MetricTotalLiabilities = "annualTotalLiabilitiesNetMinorityInterest"
	MetricTotalEquity      = "annualTotalEquityGrossMinorityInterest"
	MetricCash             = "annualCashAndCashEquivalents"
	MetricTotalDebt        = "annualTotalDebt"
)

// AllFundamentalMetrics is the full set fetched for a historical model.
var AllFundamentalMetrics = []string{
	MetricTotalRevenue,
	MetricGrossProfit,
	MetricEBITDA,
	MetricEBIT,
	MetricNetIncome,
	MetricTotalAssets,
	MetricTotalLiabilities,
	MetricTotalEquity,
	MetricCash,
	MetricTotalDebt,
}
