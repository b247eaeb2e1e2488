package workbook

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteBaseTemplate writes an empty, pre-formatted model workbook with all
// eight sheets and no market data, for analysts who want to fill the
// assumptions by hand. Returns the path written.
func WriteBaseTemplate(outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyleSet(f)
	if err != nil {
		return "", fmt.Errorf("failed to register styles: %w", err)
	}

	for _, name := range SheetNames {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	titles := map[string]string{
		SheetDashboard:     "DCF MODEL TEMPLATE",
		SheetAssumptions:   "DCF MODEL ASSUMPTIONS",
		SheetHistorical:    "HISTORICAL FINANCIALS",
		SheetProjections:   "FINANCIAL PROJECTIONS",
		SheetValuation:     "DCF VALUATION",
		SheetComps:         "COMPARABLE COMPANY ANALYSIS",
		SheetSensitivity:   "SENSITIVITY ANALYSIS",
		SheetFootballField: "FOOTBALL FIELD VALUATION",
	}

	for _, name := range SheetNames {
		if err := f.SetCellValue(name, "A1", titles[name]); err != nil {
			return "", err
		}
		if err := f.SetCellStyle(name, "A1", "A1", styles.title); err != nil {
			return "", err
		}
		if err := f.SetColWidth(name, "A", "A", 25); err != nil {
			return "", err
		}
		if err := f.SetColWidth(name, "B", "H", 14); err != nil {
			return "", err
		}
	}

	// Assumption inputs analysts fill in by hand.
	assumptionRows := []struct {
		row   int
		label string
	}{
		{17, "Risk-Free Rate"},
		{18, "Equity Risk Premium"},
		{19, "Beta"},
		{21, "Cost of Debt (pre-tax)"},
		{22, "Tax Rate"},
		{24, "Debt/Total Capital"},
		{30, "Revenue Growth Rate"},
		{31, "EBITDA Margin"},
		{32, "D&A % of Revenue"},
		{33, "CapEx % of Revenue"},
		{34, "NWC % of Revenue"},
		{35, "Terminal Growth Rate"},
	}
	for _, item := range assumptionRows {
		if err := f.SetCellValue(SheetAssumptions, cell("A", item.row), item.label); err != nil {
			return "", err
		}
		c := cell("B", item.row)
		if err := f.SetCellStyle(SheetAssumptions, c, c, styles.inputPercent); err != nil {
			return "", err
		}
	}

	if index, err := f.GetSheetIndex(SheetDashboard); err == nil {
		f.SetActiveSheet(index)
	}

	if outputPath == "" {
		outputPath = "dcf_model_template.xlsx"
	}
	if filepath.Ext(outputPath) == "" {
		outputPath += ".xlsx"
	}

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save template: %w", err)
	}
	return outputPath, nil
}
