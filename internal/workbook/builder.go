// Package workbook renders fetched market data into a formatted multi-sheet
// DCF valuation workbook.
package workbook

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/aristath/dcf-builder/internal/config"
	"github.com/aristath/dcf-builder/internal/fetcher"
	"github.com/aristath/dcf-builder/pkg/formulas"
)

// Sheet names, in workbook order.
const (
	SheetDashboard     = "Dashboard"
	SheetAssumptions   = "Assumptions"
	SheetHistorical    = "Historical"
	SheetProjections   = "Projections"
	SheetValuation     = "Valuation"
	SheetComps         = "Comps"
	SheetSensitivity   = "Sensitivity"
	SheetFootballField = "Football Field"
)

// SheetNames lists every sheet a generated workbook must contain.
var SheetNames = []string{
	SheetDashboard,
	SheetAssumptions,
	SheetHistorical,
	SheetProjections,
	SheetValuation,
	SheetComps,
	SheetSensitivity,
	SheetFootballField,
}

// Default projection assumptions used when history is too thin to seed
// them.
const (
	defaultRevenueGrowth = 0.05
	defaultEBITDAMargin  = 0.20
	defaultDAPct         = 0.03
	defaultCapExPct      = 0.04
	defaultNWCPct        = 0.10
	defaultDebtWeight    = 0.20
)

// Sanity bounds for history-seeded assumptions.
const (
	growthSeedMin = -0.30
	growthSeedMax = 0.50
	marginSeedMin = 0.05
	marginSeedMax = 0.60
)

// DataSource is the fetcher surface the builder consumes.
type DataSource interface {
	StockInfo(ticker string) (*fetcher.StockInfo, error)
	HistoricalFinancials(ticker string) (*fetcher.HistoricalFinancials, error)
	RiskFreeRate() float64
	WACC(ticker string) (*float64, error)
}

// Builder generates a complete DCF model workbook for one ticker.
type Builder struct {
	ticker   string
	scenario formulas.Scenario
	data     DataSource
	cfg      *config.Config
	log      zerolog.Logger

	f      *excelize.File
	styles *styleSet
	err    error

	info      *fetcher.StockInfo
	fin       *fetcher.HistoricalFinancials
	riskFree  float64
	wacc      *float64
	now       time.Time
	seeded    formulas.DCFInput
}

// New creates a Builder for the given ticker and scenario.
func New(ticker string, scenario formulas.Scenario, data DataSource, cfg *config.Config, log zerolog.Logger) *Builder {
	return &Builder{
		ticker:   ticker,
		scenario: scenario,
		data:     data,
		cfg:      cfg,
		log:      log.With().Str("component", "workbook").Str("ticker", ticker).Logger(),
		now:      time.Now(),
	}
}

// Generate fetches all model inputs, renders the eight sheets, and saves
// the workbook. An empty outputPath defaults to DCF_{TICKER}_{YYYYMMDD}.xlsx
// in the working directory. Returns the path written.
func (b *Builder) Generate(outputPath string) (string, error) {
	if err := b.fetchData(); err != nil {
		return "", err
	}

	b.f = excelize.NewFile()
	defer b.f.Close()

	styles, err := newStyleSet(b.f)
	if err != nil {
		return "", fmt.Errorf("failed to register styles: %w", err)
	}
	b.styles = styles

	for _, name := range SheetNames {
		if _, err := b.f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	if err := b.f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	b.buildDashboard()
	b.buildAssumptions()
	b.buildHistorical()
	b.buildProjections()
	b.buildValuation()
	b.buildComps()
	b.buildSensitivity()
	b.buildFootballField()

	if b.err != nil {
		return "", fmt.Errorf("failed to render workbook: %w", b.err)
	}

	index, err := b.f.GetSheetIndex(SheetDashboard)
	if err == nil {
		b.f.SetActiveSheet(index)
	}

	if outputPath == "" {
		outputPath = fmt.Sprintf("DCF_%s_%s.xlsx", b.ticker, b.now.Format("20060102"))
	}
	if filepath.Ext(outputPath) == "" {
		outputPath += ".xlsx"
	}

	if err := b.f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	b.log.Info().Str("path", outputPath).Str("scenario", b.scenario.Name).Msg("Workbook generated")
	return outputPath, nil
}

// Inputs returns the seeded model inputs. Valid after Generate.
func (b *Builder) Inputs() formulas.DCFInput {
	return b.seeded
}

// Summary evaluates the seeded model in Go, mirroring the workbook
// formulas. Valid after Generate.
func (b *Builder) Summary() formulas.DCFResult {
	return formulas.CalculateDCF(b.seeded)
}

// fetchData pulls every model input once up front.
func (b *Builder) fetchData() error {
	info, err := b.data.StockInfo(b.ticker)
	if err != nil {
		return err
	}
	fin, err := b.data.HistoricalFinancials(b.ticker)
	if err != nil {
		return err
	}
	wacc, err := b.data.WACC(b.ticker)
	if err != nil {
		return err
	}

	b.info = info
	b.fin = fin
	b.riskFree = b.data.RiskFreeRate()
	b.wacc = wacc
	b.seeded = b.seedAssumptions()
	return nil
}

// seedAssumptions derives projection assumptions from history where at
// least two years exist, clamped to sanity bounds, then applies the
// scenario adjustments.
func (b *Builder) seedAssumptions() formulas.DCFInput {
	input := formulas.DCFInput{
		RevenueGrowth:   defaultRevenueGrowth,
		EBITDAMargin:    defaultEBITDAMargin,
		DAPctRevenue:    defaultDAPct,
		CapExPctRevenue: defaultCapExPct,
		NWCPctRevenue:   defaultNWCPct,
		TaxRate:         b.cfg.TaxRate,
		TerminalGrowth:  b.cfg.TerminalGrowth,
		ProjectionYears: b.cfg.ProjectionYears,
	}

	if growth := formulas.YearOverYearGrowth(b.fin.RevenueSeries()); len(growth) > 0 {
		input.RevenueGrowth = formulas.Clamp(formulas.Mean(growth), growthSeedMin, growthSeedMax)
	}
	if margins := b.fin.EBITDAMargins(); len(margins) >= 2 {
		input.EBITDAMargin = formulas.Clamp(formulas.Mean(margins), marginSeedMin, marginSeedMax)
	}

	if revenues := b.fin.RevenueSeries(); len(revenues) > 0 {
		input.BaseRevenue = revenues[len(revenues)-1] / 1e6
	}
	if b.wacc != nil {
		input.WACC = *b.wacc
	} else {
		input.WACC = b.riskFree + b.cfg.EquityRiskPremium // beta of one
	}
	if b.info.SharesOutstanding != nil {
		input.SharesOutstanding = *b.info.SharesOutstanding / 1e6
	}
	input.NetDebt = (b.latestDebt() - b.latestCash()) / 1e6

	return b.scenario.Apply(input)
}

func (b *Builder) latestDebt() float64 {
	if bs := b.fin.LatestBalanceSheet(); bs != nil && bs.TotalDebt != nil {
		return *bs.TotalDebt
	}
	return 0
}

func (b *Builder) latestCash() float64 {
	if bs := b.fin.LatestBalanceSheet(); bs != nil && bs.Cash != nil {
		return *bs.Cash
	}
	return 0
}

// Sticky-error cell helpers.

func (b *Builder) set(sheet, cell string, value any) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellValue(sheet, cell, value)
}

func (b *Builder) setPtr(sheet, cell string, value *float64) {
	if value != nil {
		b.set(sheet, cell, *value)
	}
}

// setMillions writes a raw-dollar value scaled to millions.
func (b *Builder) setMillions(sheet, cell string, value *float64) {
	if value != nil {
		b.set(sheet, cell, *value/1e6)
	}
}

func (b *Builder) formula(sheet, cell, expr string) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellFormula(sheet, cell, expr)
}

func (b *Builder) style(sheet, from, to string, styleID int) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellStyle(sheet, from, to, styleID)
}

func (b *Builder) merge(sheet, from, to string) {
	if b.err != nil {
		return
	}
	b.err = b.f.MergeCell(sheet, from, to)
}

func (b *Builder) colWidth(sheet, from, to string, width float64) {
	if b.err != nil {
		return
	}
	b.err = b.f.SetColWidth(sheet, from, to, width)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
