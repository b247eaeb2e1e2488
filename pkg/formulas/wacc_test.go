package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWACC(t *testing.T) {
	tests := []struct {
		name     string
		input    WACCInput
		wantWACC float64
	}{
		{
			name: "large cap with moderate leverage",
			input: WACCInput{
				Beta:              1.2,
				RiskFreeRate:      0.04,
				EquityRiskPremium: 0.055,
				MarketCap:         2_500_000_000_000,
				TotalDebt:         100_000_000_000,
				CostOfDebt:        0.05,
				TaxRate:           0.21,
			},
			// Ke = 0.04 + 1.2*0.055 = 0.106
			// We = 25/26, Wd = 1/26, Kd(after-tax) = 0.0395
			wantWACC: (2500.0/2600.0)*0.106 + (100.0/2600.0)*0.05*0.79,
		},
		{
			name: "all equity",
			input: WACCInput{
				Beta:              1.0,
				RiskFreeRate:      0.04,
				EquityRiskPremium: 0.055,
				MarketCap:         1_000_000_000,
				CostOfDebt:        0.05,
				TaxRate:           0.21,
			},
			wantWACC: 0.095,
		},
		{
			name: "zero beta equals risk free",
			input: WACCInput{
				RiskFreeRate:      0.04,
				EquityRiskPremium: 0.055,
				MarketCap:         1_000_000_000,
			},
			wantWACC: 0.04,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWACC(tt.input)
			assert.InDelta(t, tt.wantWACC, got.WACC, 1e-9)
		})
	}
}

func TestCalculateWACCZeroCapital(t *testing.T) {
	result := CalculateWACC(WACCInput{
		Beta:              1.5,
		RiskFreeRate:      0.04,
		EquityRiskPremium: 0.055,
		CostOfDebt:        0.05,
		TaxRate:           0.21,
	})

	// No invested capital degenerates to the cost of equity.
	assert.InDelta(t, 0.04+1.5*0.055, result.WACC, 1e-9)
	assert.Equal(t, result.CostOfEquity, result.WACC)
	assert.Equal(t, 1.0, result.WeightEquity)
	assert.Equal(t, 0.0, result.WeightDebt)
}

func TestCalculateWACCPlausibleBounds(t *testing.T) {
	// Representative CAPM inputs must land in (0, 0.30).
	inputs := []WACCInput{
		{Beta: 0.8, RiskFreeRate: 0.03, EquityRiskPremium: 0.055, MarketCap: 50e9, TotalDebt: 10e9, CostOfDebt: 0.04, TaxRate: 0.21},
		{Beta: 1.2, RiskFreeRate: 0.04, EquityRiskPremium: 0.055, MarketCap: 2.5e12, TotalDebt: 100e9, CostOfDebt: 0.05, TaxRate: 0.21},
		{Beta: 2.0, RiskFreeRate: 0.05, EquityRiskPremium: 0.055, MarketCap: 1e9, TotalDebt: 2e9, CostOfDebt: 0.08, TaxRate: 0.21},
	}

	for _, input := range inputs {
		wacc := CalculateWACC(input).WACC
		assert.Greater(t, wacc, 0.0)
		assert.Less(t, wacc, 0.30)
	}
}

func TestCalculateWACCWeightsSumToOne(t *testing.T) {
	result := CalculateWACC(WACCInput{
		Beta:              1.1,
		RiskFreeRate:      0.04,
		EquityRiskPremium: 0.055,
		MarketCap:         300e9,
		TotalDebt:         120e9,
		CostOfDebt:        0.05,
		TaxRate:           0.21,
	})

	assert.InDelta(t, 1.0, result.WeightEquity+result.WeightDebt, 1e-12)
}
