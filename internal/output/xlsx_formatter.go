package output

import (
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	linesSheet   = "Components"
)

// XLSXFormatter produces a workbook with a per-employee summary sheet and a
// sheet listing every component line.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

var summaryHeader = []string{"EmployeeID", "Period", "GrossSalary", "TotalEarnings", "TotalDeductions", "NetPay", "Valid", "Error"}

func (x XLSXFormatter) Format(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, err
	}
	invalidStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "C00000"},
	})
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, summarySheet, summaryHeader, headerStyle); err != nil {
		return nil, err
	}
	if err := writeHeader(f, linesSheet, csvHeader, headerStyle); err != nil {
		return nil, err
	}

	lineRow := 2
	for i, e := range report.Entries {
		b := e.Breakdown
		row := i + 2
		values := []interface{}{
			e.label(i), e.Period, amount(e.GrossSalary),
			amount(b.TotalEarnings), amount(b.TotalDeductions), amount(b.NetPay),
			b.IsValid, b.ErrorMessage,
		}
		if err := setRow(f, summarySheet, row, values); err != nil {
			return nil, err
		}
		if !b.IsValid {
			last, _ := excelize.CoordinatesToCellName(len(values), row)
			first, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellStyle(summarySheet, first, last, invalidStyle); err != nil {
				return nil, err
			}
		}

		prefix := []interface{}{e.label(i), e.Period, amount(e.GrossSalary)}
		for _, l := range b.Earnings {
			vals := append(append([]interface{}(nil), prefix...), "earning", l.ComponentID, l.Name, amount(l.Amount), l.IsEnabled, l.IsBalancer, b.IsValid)
			if err := setRow(f, linesSheet, lineRow, vals); err != nil {
				return nil, err
			}
			lineRow++
		}
		for _, l := range b.Deductions {
			vals := append(append([]interface{}(nil), prefix...), "deduction", l.ComponentID, l.Name, amount(l.Amount), l.IsEnabled, false, b.IsValid)
			if err := setRow(f, linesSheet, lineRow, vals); err != nil {
				return nil, err
			}
			lineRow++
		}
	}

	for _, sheet := range []string{summarySheet, linesSheet} {
		if err := f.SetColWidth(sheet, "A", "J", 16); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, names []string, style int) error {
	for i, name := range names {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(names), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	return f.SetSheetRow(sheet, cell, &values)
}

// amount converts to float64 so spreadsheet cells stay numeric.
func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
