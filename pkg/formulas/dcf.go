package formulas

import "math"

// DCFInput holds the inputs for a two-stage discounted cash flow valuation.
// Monetary inputs are in millions.
type DCFInput struct {
	BaseRevenue       float64 // Most recent fiscal year revenue
	RevenueGrowth     float64 // Annual growth rate, e.g. 0.05
	EBITDAMargin      float64 // e.g. 0.20
	DAPctRevenue      float64 // Depreciation and amortization
	CapExPctRevenue   float64
	NWCPctRevenue     float64 // Net working capital
	TaxRate           float64
	WACC              float64
	TerminalGrowth    float64
	ProjectionYears   int
	NetDebt           float64 // Total debt less cash, most recent year
	SharesOutstanding float64 // Millions
}

// DCFResult holds the valuation outputs. Monetary values in millions except
// ValuePerShare.
type DCFResult struct {
	FreeCashFlows   []float64
	PVofFCF         float64
	TerminalValue   float64
	PVofTerminal    float64
	EnterpriseValue float64
	EquityValue     float64
	ValuePerShare   float64
}

// CalculateDCF runs a standard unlevered free cash flow DCF with a
// Gordon-growth terminal value.
//
// Per projected year:
//
//	Revenue_n = BaseRevenue × (1+g)^n
//	EBITDA    = Revenue × margin
//	EBIT      = EBITDA − D&A
//	NOPAT     = EBIT × (1 − t)
//	UFCF      = NOPAT + D&A − CapEx − ΔNWC
//
// Terminal value capitalizes the final-year UFCF at (WACC − g_terminal);
// it is zero when WACC does not exceed the terminal growth rate.
func CalculateDCF(input DCFInput) DCFResult {
	years := input.ProjectionYears
	if years <= 0 {
		years = 5
	}

	result := DCFResult{FreeCashFlows: make([]float64, years)}

	prevRevenue := input.BaseRevenue
	var lastFCF float64

	for n := 1; n <= years; n++ {
		revenue := prevRevenue * (1 + input.RevenueGrowth)
		ebitda := revenue * input.EBITDAMargin
		da := revenue * input.DAPctRevenue
		ebit := ebitda - da
		nopat := ebit * (1 - input.TaxRate)
		capex := revenue * input.CapExPctRevenue
		deltaNWC := (revenue - prevRevenue) * input.NWCPctRevenue

		fcf := nopat + da - capex - deltaNWC
		result.FreeCashFlows[n-1] = fcf
		result.PVofFCF += fcf / math.Pow(1+input.WACC, float64(n))

		prevRevenue = revenue
		lastFCF = fcf
	}

	if input.WACC > input.TerminalGrowth {
		result.TerminalValue = lastFCF * (1 + input.TerminalGrowth) / (input.WACC - input.TerminalGrowth)
		result.PVofTerminal = result.TerminalValue / math.Pow(1+input.WACC, float64(years))
	}

	result.EnterpriseValue = result.PVofFCF + result.PVofTerminal
	result.EquityValue = result.EnterpriseValue - input.NetDebt
	if input.SharesOutstanding > 0 {
		result.ValuePerShare = result.EquityValue / input.SharesOutstanding
	}

	return result
}

// SensitivityMatrix computes DCF value per share across a grid of WACC and
// terminal growth rates. Rows follow waccRates, columns growthRates. Cells
// where WACC does not exceed terminal growth carry a zero terminal value
// rather than a divide-by-zero artifact.
func SensitivityMatrix(base DCFInput, waccRates, growthRates []float64) [][]float64 {
	matrix := make([][]float64, len(waccRates))
	for i, wacc := range waccRates {
		matrix[i] = make([]float64, len(growthRates))
		for j, growth := range growthRates {
			scenario := base
			scenario.WACC = wacc
			scenario.TerminalGrowth = growth
			matrix[i][j] = CalculateDCF(scenario).ValuePerShare
		}
	}
	return matrix
}
