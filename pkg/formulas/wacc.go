package formulas

// WACCInput holds the inputs for a weighted-average cost of capital
// calculation.
type WACCInput struct {
	Beta              float64
	RiskFreeRate      float64
	EquityRiskPremium float64
	MarketCap         float64 // Equity value, raw dollars
	TotalDebt         float64 // Most recent fiscal year, raw dollars
	CostOfDebt        float64 // Pre-tax
	TaxRate           float64
}

// WACCResult holds the computed rates and capital weights.
type WACCResult struct {
	CostOfEquity float64
	CostOfDebt   float64 // After-tax
	WeightEquity float64
	WeightDebt   float64
	WACC         float64
}

// CalculateWACC computes the weighted average cost of capital.
//
// Cost of equity comes from CAPM:
//
//	Ke = Rf + Beta × ERP
//
// Capital weights use market values:
//
//	We = E / (E + D),  Wd = D / (E + D)
//	WACC = We × Ke + Wd × Kd × (1 − t)
//
// When total invested capital is zero the result degenerates to the cost
// of equity alone.
func CalculateWACC(input WACCInput) WACCResult {
	costOfEquity := input.RiskFreeRate + input.Beta*input.EquityRiskPremium
	afterTaxDebt := input.CostOfDebt * (1 - input.TaxRate)

	totalCapital := input.MarketCap + input.TotalDebt
	if totalCapital == 0 {
		return WACCResult{
			CostOfEquity: costOfEquity,
			CostOfDebt:   afterTaxDebt,
			WeightEquity: 1,
			WACC:         costOfEquity,
		}
	}

	weightEquity := input.MarketCap / totalCapital
	weightDebt := input.TotalDebt / totalCapital

	return WACCResult{
		CostOfEquity: costOfEquity,
		CostOfDebt:   afterTaxDebt,
		WeightEquity: weightEquity,
		WeightDebt:   weightDebt,
		WACC:         weightEquity*costOfEquity + weightDebt*afterTaxDebt,
	}
}
