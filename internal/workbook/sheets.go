package workbook

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/aristath/dcf-builder/internal/fetcher"
	"github.com/aristath/dcf-builder/pkg/formulas"
)

func (b *Builder) buildDashboard() {
	ws := SheetDashboard

	b.merge(ws, "A1", "H1")
	b.set(ws, "A1", fmt.Sprintf("%s (%s)", b.info.DisplayName(b.ticker), b.ticker))
	b.style(ws, "A1", "A1", b.styles.titleLarge)

	b.merge(ws, "A2", "H2")
	b.set(ws, "A2", "DCF Valuation Analysis")
	b.style(ws, "A2", "A2", b.styles.title)

	b.set(ws, "A3", "Generated: "+b.now.Format("2006-01-02"))
	b.set(ws, "F3", "Scenario:")
	b.set(ws, "G3", b.scenario.Name+" Case")
	b.style(ws, "G3", "G3", b.styles.input)

	b.set(ws, "A5", "KEY METRICS")
	b.merge(ws, "A5", "C5")
	b.style(ws, "A5", "A5", b.styles.header)

	b.set(ws, "A6", "Current Price")
	b.setPtr(ws, "B6", b.info.Price)
	b.style(ws, "B6", "B6", b.styles.currency)

	b.set(ws, "A7", "Market Cap (M)")
	b.setMillions(ws, "B7", b.info.MarketCap)
	b.style(ws, "B7", "B7", b.styles.millions)

	b.set(ws, "A8", "EV/EBITDA")
	b.style(ws, "B8", "B8", b.styles.multiple)
	if b.info.EnterpriseValue != nil {
		if latest, ok := b.fin.IncomeStatement[b.fin.LatestYear()]; ok && latest.EBITDA != nil && *latest.EBITDA != 0 {
			b.set(ws, "B8", *b.info.EnterpriseValue / *latest.EBITDA)
		}
	}

	b.set(ws, "A9", "Beta")
	b.setPtr(ws, "B9", b.info.Beta)
	b.style(ws, "B9", "B9", b.styles.twoDecimal)

	b.set(ws, "A10", "52-Week High")
	b.setPtr(ws, "B10", b.info.FiftyTwoWeekHigh)
	b.style(ws, "B10", "B10", b.styles.currency)

	b.set(ws, "A11", "52-Week Low")
	b.setPtr(ws, "B11", b.info.FiftyTwoWeekLow)
	b.style(ws, "B11", "B11", b.styles.currency)

	b.set(ws, "E5", "VALUATION SUMMARY")
	b.merge(ws, "E5", "G5")
	b.style(ws, "E5", "E5", b.styles.header)

	b.set(ws, "E6", "DCF Value per Share")
	b.formula(ws, "F6", "Valuation!B25")
	b.style(ws, "F6", "F6", b.styles.currency)

	b.set(ws, "E7", "Current Price")
	b.formula(ws, "F7", "B6")
	b.style(ws, "F7", "F7", b.styles.currency)

	b.set(ws, "E8", "Implied Upside")
	b.formula(ws, "F8", "IF(F7>0,(F6-F7)/F7,0)")
	b.style(ws, "F8", "F8", b.styles.percent)

	for _, col := range []string{"A", "B", "C", "E", "F", "G"} {
		b.colWidth(ws, col, col, 18)
	}
}

func (b *Builder) buildAssumptions() {
	ws := SheetAssumptions

	b.set(ws, "A1", "DCF MODEL ASSUMPTIONS")
	b.merge(ws, "A1", "D1")
	b.style(ws, "A1", "A1", b.styles.title)

	b.set(ws, "A3", "Scenario")
	b.set(ws, "B3", b.scenario.Name)
	b.style(ws, "B3", "B3", b.styles.input)

	b.set(ws, "A5", "COMPANY INFORMATION")
	b.merge(ws, "A5", "D5")
	b.style(ws, "A5", "A5", b.styles.header)

	b.set(ws, "A6", "Ticker")
	b.set(ws, "B6", b.ticker)
	b.set(ws, "A7", "Company Name")
	b.set(ws, "B7", b.info.DisplayName(b.ticker))

	b.set(ws, "A9", "MARKET DATA")
	b.merge(ws, "A9", "D9")
	b.style(ws, "A9", "A9", b.styles.header)

	b.set(ws, "A10", "Current Price")
	b.setPtr(ws, "B10", b.info.Price)
	b.set(ws, "A11", "Shares Outstanding (M)")
	b.setMillions(ws, "B11", b.info.SharesOutstanding)
	b.set(ws, "A12", "Market Cap (M)")
	b.setMillions(ws, "B12", b.info.MarketCap)
	b.set(ws, "A13", "Beta")
	b.setPtr(ws, "B13", b.info.Beta)
	b.set(ws, "A14", "Risk-Free Rate")
	b.set(ws, "B14", b.riskFree)
	b.style(ws, "B10", "B14", b.styles.subheaderFill)

	b.set(ws, "A16", "WACC INPUTS")
	b.merge(ws, "A16", "D16")
	b.style(ws, "A16", "A16", b.styles.header)

	// Rows 17-26. Literal rows are inputs; derived rows are formulas
	// other sheets anchor to (B26 is the WACC).
	b.set(ws, "A17", "Risk-Free Rate")
	b.set(ws, "B17", b.riskFree)
	b.style(ws, "B17", "B17", b.styles.inputPercent)

	b.set(ws, "A18", "Equity Risk Premium")
	b.set(ws, "B18", b.cfg.EquityRiskPremium)
	b.style(ws, "B18", "B18", b.styles.inputPercent)

	b.set(ws, "A19", "Beta")
	b.setPtr(ws, "B19", b.info.Beta)
	b.style(ws, "B19", "B19", b.styles.inputNumber)

	b.set(ws, "A20", "Cost of Equity")
	b.formula(ws, "B20", "B17+B18*B19")
	b.style(ws, "B20", "B20", b.styles.percent)

	b.set(ws, "A21", "Cost of Debt (pre-tax)")
	b.set(ws, "B21", b.cfg.CostOfDebt)
	b.style(ws, "B21", "B21", b.styles.inputPercent)

	b.set(ws, "A22", "Tax Rate")
	b.set(ws, "B22", b.cfg.TaxRate)
	b.style(ws, "B22", "B22", b.styles.inputPercent)

	b.set(ws, "A23", "Cost of Debt (after-tax)")
	b.formula(ws, "B23", "B21*(1-B22)")
	b.style(ws, "B23", "B23", b.styles.percent)

	b.set(ws, "A24", "Debt/Total Capital")
	b.set(ws, "B24", debtWeightOrDefault(b))
	b.style(ws, "B24", "B24", b.styles.inputPercent)

	b.set(ws, "A25", "Equity/Total Capital")
	b.formula(ws, "B25", "1-B24")
	b.style(ws, "B25", "B25", b.styles.percent)

	b.set(ws, "A26", "WACC")
	b.formula(ws, "B26", "B20*B25+B23*B24")
	b.style(ws, "B26", "B26", b.styles.percent)

	b.set(ws, "A28", "PROJECTION ASSUMPTIONS")
	b.merge(ws, "A28", "D28")
	b.style(ws, "A28", "A28", b.styles.header)

	// Rows 29-35; Projections anchors to $B$30..$B$34, Valuation to B35.
	b.set(ws, "A29", "Projection Years")
	b.set(ws, "B29", b.cfg.ProjectionYears)
	b.style(ws, "B29", "B29", b.styles.input)

	b.set(ws, "A30", "Revenue Growth Rate")
	b.set(ws, "B30", b.seeded.RevenueGrowth)
	b.set(ws, "A31", "EBITDA Margin")
	b.set(ws, "B31", b.seeded.EBITDAMargin)
	b.set(ws, "A32", "D&A % of Revenue")
	b.set(ws, "B32", b.seeded.DAPctRevenue)
	b.set(ws, "A33", "CapEx % of Revenue")
	b.set(ws, "B33", b.seeded.CapExPctRevenue)
	b.set(ws, "A34", "NWC % of Revenue")
	b.set(ws, "B34", b.seeded.NWCPctRevenue)
	b.set(ws, "A35", "Terminal Growth Rate")
	b.set(ws, "B35", b.seeded.TerminalGrowth)
	b.style(ws, "B30", "B35", b.styles.inputPercent)

	b.colWidth(ws, "A", "A", 25)
	b.colWidth(ws, "B", "B", 15)
}

// debtWeightOrDefault derives the debt weight from market values, falling
// back to the 20% template default when the inputs are missing.
func debtWeightOrDefault(b *Builder) float64 {
	if b.info.MarketCap != nil {
		total := *b.info.MarketCap + b.latestDebt()
		if total > 0 {
			return b.latestDebt() / total
		}
	}
	return defaultDebtWeight
}

func (b *Builder) buildHistorical() {
	ws := SheetHistorical

	b.set(ws, "A1", "HISTORICAL FINANCIALS")
	b.style(ws, "A1", "A1", b.styles.title)

	// Latest year first, like the statements read.
	years := append([]int(nil), b.fin.Years...)
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	if len(years) == 0 {
		b.set(ws, "A3", "No historical data available")
		b.colWidth(ws, "A", "A", 20)
		return
	}

	b.set(ws, "A3", "Income Statement")
	b.style(ws, "A3", "A3", b.styles.header)
	for i, year := range years {
		c := cell(colName(i+2), 3)
		b.set(ws, c, year)
		b.style(ws, c, c, b.styles.header)
	}

	incomeRows := []struct {
		label string
		value func(is fetcher.IncomeStatement) *float64
	}{
		{"Revenue", func(is fetcher.IncomeStatement) *float64 { return is.Revenue }},
		{"Gross Profit", func(is fetcher.IncomeStatement) *float64 { return is.GrossProfit }},
		{"EBITDA", func(is fetcher.IncomeStatement) *float64 { return is.EBITDA }},
		{"EBIT", func(is fetcher.IncomeStatement) *float64 { return is.EBIT }},
		{"Net Income", func(is fetcher.IncomeStatement) *float64 { return is.NetIncome }},
	}

	row := 4
	for _, item := range incomeRows {
		b.set(ws, cell("A", row), item.label)
		for i, year := range years {
			c := cell(colName(i+2), row)
			if is, ok := b.fin.IncomeStatement[year]; ok {
				b.setMillions(ws, c, item.value(is))
			}
			b.style(ws, c, c, b.styles.millions)
		}
		row++
	}

	row++ // 10
	b.set(ws, cell("A", row), "Growth Rates")
	b.style(ws, cell("A", row), cell("A", row), b.styles.subheader)
	row++

	b.set(ws, cell("A", row), "Revenue Growth")
	for i := 0; i < len(years)-1; i++ {
		curr := b.fin.IncomeStatement[years[i]].Revenue
		prev := b.fin.IncomeStatement[years[i+1]].Revenue
		if curr == nil || prev == nil || *prev == 0 {
			continue
		}
		c := cell(colName(i+2), row)
		b.set(ws, c, (*curr-*prev) / *prev)
		b.style(ws, c, c, b.styles.percent)
	}
	row++

	b.set(ws, cell("A", row), "EBITDA Margin")
	for i, year := range years {
		is := b.fin.IncomeStatement[year]
		if is.EBITDA == nil || is.Revenue == nil || *is.Revenue == 0 {
			continue
		}
		c := cell(colName(i+2), row)
		b.set(ws, c, *is.EBITDA / *is.Revenue)
		b.style(ws, c, c, b.styles.percent)
	}
	row += 2

	b.set(ws, cell("A", row), "Balance Sheet")
	b.style(ws, cell("A", row), cell(colName(len(years)+1), row), b.styles.header)
	row++

	balanceRows := []struct {
		label string
		value func(bs fetcher.BalanceSheet) *float64
	}{
		{"Total Assets", func(bs fetcher.BalanceSheet) *float64 { return bs.TotalAssets }},
		{"Total Liabilities", func(bs fetcher.BalanceSheet) *float64 { return bs.TotalLiabilities }},
		{"Total Equity", func(bs fetcher.BalanceSheet) *float64 { return bs.TotalEquity }},
		{"Cash", func(bs fetcher.BalanceSheet) *float64 { return bs.Cash }},
		{"Total Debt", func(bs fetcher.BalanceSheet) *float64 { return bs.TotalDebt }},
	}

	for _, item := range balanceRows {
		b.set(ws, cell("A", row), item.label)
		for i, year := range years {
			c := cell(colName(i+2), row)
			if bs, ok := b.fin.BalanceSheet[year]; ok {
				b.setMillions(ws, c, item.value(bs))
			}
			b.style(ws, c, c, b.styles.millions)
		}
		row++
	}

	b.colWidth(ws, "A", "A", 20)
	b.colWidth(ws, "B", colName(len(years)+1), 15)
}

func (b *Builder) buildProjections() {
	ws := SheetProjections

	b.set(ws, "A1", "FINANCIAL PROJECTIONS")
	b.style(ws, "A1", "A1", b.styles.title)

	currentYear := b.now.Year()

	b.set(ws, "A3", "Projection")
	b.style(ws, "A3", "A3", b.styles.header)
	numCols := 6
	for i := 0; i < numCols; i++ {
		c := cell(colName(i+2), 3)
		b.set(ws, c, currentYear+i)
		b.style(ws, c, c, b.styles.header)
	}

	// Fixed row anchors: the Valuation sheet references row 15 (UFCF) and
	// the formulas below cross-reference each other by row number.
	labels := []struct {
		row    int
		label  string
		format int
	}{
		{4, "Revenue", b.styles.millions},
		{5, "Revenue Growth", b.styles.percent},
		{6, "EBITDA", b.styles.millions},
		{7, "EBITDA Margin", b.styles.percent},
		{8, "D&A", b.styles.millions},
		{9, "EBIT", b.styles.millions},
		{10, "Less: Taxes", b.styles.millions},
		{11, "NOPAT", b.styles.millions},
		{12, "Plus: D&A", b.styles.millions},
		{13, "Less: CapEx", b.styles.millions},
		{14, "Less: Change in NWC", b.styles.millions},
		{15, "Unlevered FCF", b.styles.millions},
	}

	for _, item := range labels {
		b.set(ws, cell("A", item.row), item.label)
	}

	for i := 0; i < numCols; i++ {
		col := colName(i + 2)
		prev := colName(i + 1)

		if i == 0 {
			b.set(ws, cell(col, 4), b.seeded.BaseRevenue)
			b.set(ws, cell(col, 14), 0)
		} else {
			b.formula(ws, cell(col, 4), fmt.Sprintf("%s4*(1+Assumptions!$B$30)", prev))
			b.formula(ws, cell(col, 14), fmt.Sprintf("(%s4-%s4)*Assumptions!$B$34", col, prev))
		}

		b.formula(ws, cell(col, 5), "Assumptions!$B$30")
		b.formula(ws, cell(col, 6), col+"4*Assumptions!$B$31")
		b.formula(ws, cell(col, 7), "Assumptions!$B$31")
		b.formula(ws, cell(col, 8), col+"4*Assumptions!$B$32")
		b.formula(ws, cell(col, 9), fmt.Sprintf("%s6-%s8", col, col))
		b.formula(ws, cell(col, 10), col+"9*Assumptions!$B$22")
		b.formula(ws, cell(col, 11), fmt.Sprintf("%s9-%s10", col, col))
		b.formula(ws, cell(col, 12), col+"8")
		b.formula(ws, cell(col, 13), col+"4*Assumptions!$B$33")
		b.formula(ws, cell(col, 15), fmt.Sprintf("%s11+%s12-%s13-%s14", col, col, col, col))

		for _, item := range labels {
			c := cell(col, item.row)
			b.style(ws, c, c, item.format)
		}
		// Highlight the FCF row the valuation discounts.
		b.style(ws, cell(col, 15), cell(col, 15), b.styles.subheaderMillions)
	}

	b.colWidth(ws, "A", "A", 22)
	b.colWidth(ws, "B", colName(numCols+1), 14)
}

func (b *Builder) buildValuation() {
	ws := SheetValuation

	b.set(ws, "A1", "DCF VALUATION")
	b.style(ws, "A1", "A1", b.styles.title)

	b.set(ws, "A3", "VALUATION INPUTS")
	b.merge(ws, "A3", "B3")
	b.style(ws, "A3", "A3", b.styles.header)

	b.set(ws, "A4", "WACC")
	b.formula(ws, "B4", "Assumptions!B26")
	b.style(ws, "B4", "B4", b.styles.percent)

	b.set(ws, "A5", "Terminal Growth Rate")
	b.formula(ws, "B5", "Assumptions!B35")
	b.style(ws, "B5", "B5", b.styles.percent)

	b.set(ws, "A6", "Terminal Year FCF")
	b.formula(ws, "B6", "Projections!G15")
	b.style(ws, "B6", "B6", b.styles.millions)

	b.set(ws, "A8", "TERMINAL VALUE")
	b.merge(ws, "A8", "B8")
	b.style(ws, "A8", "A8", b.styles.header)

	b.set(ws, "A9", "Terminal Value")
	b.formula(ws, "B9", "B6*(1+B5)/(B4-B5)")
	b.style(ws, "B9", "B9", b.styles.millions)

	b.set(ws, "A11", "PRESENT VALUE CALCULATION")
	b.merge(ws, "A11", "B11")
	b.style(ws, "A11", "A11", b.styles.header)

	// Column B on Projections is the base year; years 1-5 live in C..G.
	for year := 1; year <= 5; year++ {
		row := 11 + year
		b.set(ws, cell("A", row), fmt.Sprintf("PV of FCF Year %d", year))
		b.formula(ws, cell("B", row), fmt.Sprintf("Projections!%s15/(1+$B$4)^%d", colName(year+2), year))
		b.style(ws, cell("B", row), cell("B", row), b.styles.millions)
	}

	b.set(ws, "A17", "PV of Terminal Value")
	b.formula(ws, "B17", "B9/(1+$B$4)^5")
	b.style(ws, "B17", "B17", b.styles.millions)

	b.set(ws, "A19", "VALUATION SUMMARY")
	b.merge(ws, "A19", "B19")
	b.style(ws, "A19", "A19", b.styles.header)

	b.set(ws, "A20", "Enterprise Value")
	b.formula(ws, "B20", "SUM(B12:B17)")
	b.style(ws, "B20", "B20", b.styles.subheaderMillions)

	b.set(ws, "A21", "Less: Debt")
	b.set(ws, "B21", b.latestDebt()/1e6)
	b.style(ws, "B21", "B21", b.styles.millions)

	b.set(ws, "A22", "Plus: Cash")
	b.set(ws, "B22", b.latestCash()/1e6)
	b.style(ws, "B22", "B22", b.styles.millions)

	b.set(ws, "A23", "Equity Value")
	b.formula(ws, "B23", "B20-B21+B22")
	b.style(ws, "B23", "B23", b.styles.subheaderMillions)

	b.set(ws, "A24", "Shares Outstanding (M)")
	if b.info.SharesOutstanding != nil {
		b.set(ws, "B24", *b.info.SharesOutstanding/1e6)
	} else {
		b.set(ws, "B24", 0)
	}
	b.style(ws, "B24", "B24", b.styles.oneDecimal)

	b.set(ws, "A25", "DCF Value per Share")
	b.formula(ws, "B25", "IF(B24>0,B23/B24,0)")
	b.style(ws, "B25", "B25", b.styles.currencyInput)

	b.set(ws, "A26", "Current Price")
	b.setPtr(ws, "B26", b.info.Price)
	b.style(ws, "B26", "B26", b.styles.currency)

	b.set(ws, "A27", "Implied Upside/(Downside)")
	b.formula(ws, "B27", "IF(B26>0,(B25-B26)/B26,0)")
	b.style(ws, "B27", "B27", b.styles.boldPercent)

	b.colWidth(ws, "A", "A", 25)
	b.colWidth(ws, "B", "B", 18)
}

func (b *Builder) buildComps() {
	ws := SheetComps

	b.set(ws, "A1", "COMPARABLE COMPANY ANALYSIS")
	b.style(ws, "A1", "A1", b.styles.title)

	b.set(ws, "A3", "Enter peer tickers below (up to 10):")

	headers := []string{"Company", "Ticker", "EV (M)", "Revenue (M)", "EBITDA (M)", "EV/Rev", "EV/EBITDA", "P/E"}
	for i, header := range headers {
		c := cell(colName(i+1), 5)
		b.set(ws, c, header)
		b.style(ws, c, c, b.styles.header)
	}

	// Peer input rows.
	b.style(ws, "B6", "B15", b.styles.input)

	b.set(ws, "A17", b.info.DisplayName(b.ticker))
	b.set(ws, "B17", b.ticker)
	b.style(ws, "A17", "B17", b.styles.bold)
	b.setMillions(ws, "C17", b.info.EnterpriseValue)
	b.style(ws, "C17", "C17", b.styles.millions)
	if latest, ok := b.fin.IncomeStatement[b.fin.LatestYear()]; ok {
		b.setMillions(ws, "D17", latest.Revenue)
		b.setMillions(ws, "E17", latest.EBITDA)
		b.style(ws, "D17", "E17", b.styles.millions)
	}
	b.setPtr(ws, "H17", b.info.TrailingPE)
	b.style(ws, "H17", "H17", b.styles.oneDecimal)

	b.set(ws, "A18", "Median")
	b.style(ws, "A18", "A18", b.styles.subheader)

	b.colWidth(ws, "A", "A", 25)
	b.colWidth(ws, "B", "B", 10)
	b.colWidth(ws, "C", "H", 14)
}

// Sensitivity axis values.
var (
	sensitivityGrowthRates = []float64{0.015, 0.02, 0.025, 0.03, 0.035}
	sensitivityWACCRates   = []float64{0.08, 0.09, 0.10, 0.11, 0.12}
)

func (b *Builder) buildSensitivity() {
	ws := SheetSensitivity

	b.set(ws, "A1", "SENSITIVITY ANALYSIS")
	b.style(ws, "A1", "A1", b.styles.title)

	b.set(ws, "A3", "DCF Value per Share: WACC vs Terminal Growth")
	b.style(ws, "A3", "A3", b.styles.bold)

	b.set(ws, "A4", "WACC \\ TGR")
	b.style(ws, "A4", "A4", b.styles.bold)

	for i, rate := range sensitivityGrowthRates {
		c := cell(colName(i+2), 4)
		b.set(ws, c, rate)
		b.style(ws, c, c, b.styles.headerFmtPct)
	}

	matrix := b.sensitivityMatrix()
	for i, wacc := range sensitivityWACCRates {
		row := 5 + i
		c := cell("A", row)
		b.set(ws, c, wacc)
		b.style(ws, c, c, b.styles.headerFmtPct)

		for j := range sensitivityGrowthRates {
			c := cell(colName(j+2), row)
			b.set(ws, c, matrix[i][j])
			b.style(ws, c, c, b.styles.currency)
		}
	}

	b.colWidth(ws, "A", "A", 15)
	b.colWidth(ws, "B", colName(len(sensitivityGrowthRates)+1), 12)
}

// sensitivityMatrix evaluates the seeded model across the WACC and
// terminal-growth grid.
func (b *Builder) sensitivityMatrix() [][]float64 {
	return formulas.SensitivityMatrix(b.seeded, sensitivityWACCRates, sensitivityGrowthRates)
}

func (b *Builder) buildFootballField() {
	ws := SheetFootballField

	b.set(ws, "A1", "FOOTBALL FIELD VALUATION")
	b.style(ws, "A1", "A1", b.styles.title)

	b.set(ws, "A3", "Valuation Method")
	b.set(ws, "B3", "Low")
	b.set(ws, "C3", "Mid")
	b.set(ws, "D3", "High")
	b.style(ws, "A3", "D3", b.styles.header)

	// DCF ranges anchor to the per-share value on the Valuation sheet.
	ranges := []struct {
		method          string
		low, mid, high  string
	}{
		{"DCF - Bear Case", "Valuation!B25*0.85", "Valuation!B25*0.95", "Valuation!B25"},
		{"DCF - Base Case", "Valuation!B25", "Valuation!B25*1.05", "Valuation!B25*1.15"},
		{"DCF - Bull Case", "Valuation!B25*1.1", "Valuation!B25*1.2", "Valuation!B25*1.35"},
	}

	for i, r := range ranges {
		row := 4 + i
		b.set(ws, cell("A", row), r.method)
		b.formula(ws, cell("B", row), r.low)
		b.formula(ws, cell("C", row), r.mid)
		b.formula(ws, cell("D", row), r.high)
		b.style(ws, cell("B", row), cell("D", row), b.styles.currency)
	}

	b.set(ws, "A7", "52-Week Range")
	b.setPtr(ws, "B7", b.info.FiftyTwoWeekLow)
	b.formula(ws, "C7", "(B7+D7)/2")
	b.setPtr(ws, "D7", b.info.FiftyTwoWeekHigh)
	b.style(ws, "B7", "D7", b.styles.currency)

	b.set(ws, "A9", "Current Price")
	b.setPtr(ws, "B9", b.info.Price)
	b.style(ws, "B9", "B9", b.styles.boldCurrency)

	b.addFootballFieldChart(ws)

	b.colWidth(ws, "A", "A", 20)
	b.colWidth(ws, "B", "D", 12)
}

func (b *Builder) addFootballFieldChart(ws string) {
	if b.err != nil {
		return
	}
	b.err = b.f.AddChart(ws, "F3", &excelize.Chart{
		Type: excelize.Bar,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$3", ws),
				Categories: fmt.Sprintf("'%s'!$A$4:$A$7", ws),
				Values:     fmt.Sprintf("'%s'!$B$4:$B$7", ws),
			},
			{
				Name:       fmt.Sprintf("'%s'!$D$3", ws),
				Categories: fmt.Sprintf("'%s'!$A$4:$A$7", ws),
				Values:     fmt.Sprintf("'%s'!$D$4:$D$7", ws),
			},
		},
		Title:     []excelize.RichTextRun{{Text: "Valuation Range ($/share)"}},
		Dimension: excelize.ChartDimension{Width: 480, Height: 280},
	})
}
