package workbook

import "github.com/xuri/excelize/v2"

// Number formats shared across sheets.
const (
	fmtMillions = `#,##0.0"M"`
	fmtPercent  = "0.0%"
	fmtCurrency = "$#,##0.00"
	fmtMultiple = "0.0x"
	fmtTwoDec   = "0.00"
	fmtOneDec   = "0.0"
)

const (
	headerColor    = "4472C4"
	subheaderColor = "D9E2F3"
	inputColor     = "FFFF00"
)

// styleSet holds the style IDs registered on a workbook. Styles combine
// fill, font and number format, so the common combinations are
// pre-registered once per file.
type styleSet struct {
	titleLarge int
	title      int
	bold       int
	header     int
	subheader  int
	input      int

	currency     int
	percent      int
	millions     int
	multiple     int
	twoDecimal   int
	oneDecimal   int
	headerFmtPct int

	inputPercent      int
	inputNumber       int
	inputCurrency     int
	subheaderFill     int
	subheaderMillions int
	boldCurrency      int
	boldPercent       int
	currencyInput     int
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{}
	var err error

	register := func(style *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = f.NewStyle(style)
		return id
	}

	numFmt := func(format string) *excelize.Style {
		return &excelize.Style{CustomNumFmt: &format}
	}

	s.titleLarge = register(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 18}})
	s.title = register(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	s.bold = register(&excelize.Style{Font: &excelize.Font{Bold: true}})
	s.header = register(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: solidFill(headerColor),
	})
	s.subheader = register(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solidFill(subheaderColor),
	})
	s.input = register(&excelize.Style{Fill: solidFill(inputColor)})

	s.currency = register(numFmt(fmtCurrency))
	s.percent = register(numFmt(fmtPercent))
	s.millions = register(numFmt(fmtMillions))
	s.multiple = register(numFmt(fmtMultiple))
	s.twoDecimal = register(numFmt(fmtTwoDec))
	s.oneDecimal = register(numFmt(fmtOneDec))

	pct := fmtPercent
	cur := fmtCurrency
	mil := fmtMillions
	two := fmtTwoDec

	s.headerFmtPct = register(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:         solidFill(headerColor),
		CustomNumFmt: &pct,
	})
	s.inputPercent = register(&excelize.Style{Fill: solidFill(inputColor), CustomNumFmt: &pct})
	s.inputNumber = register(&excelize.Style{Fill: solidFill(inputColor), CustomNumFmt: &two})
	s.inputCurrency = register(&excelize.Style{Fill: solidFill(inputColor), CustomNumFmt: &cur})
	s.subheaderFill = register(&excelize.Style{Fill: solidFill(subheaderColor)})
	s.subheaderMillions = register(&excelize.Style{Fill: solidFill(subheaderColor), CustomNumFmt: &mil})
	s.boldCurrency = register(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &cur})
	s.boldPercent = register(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &pct})
	s.currencyInput = register(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         solidFill(inputColor),
		CustomNumFmt: &cur,
	})

	if err != nil {
		return nil, err
	}
	return s, nil
}
