package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFFormatter renders one payslip-style page per entry.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Salary breakdown - %s", report.StructureName), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	cur := report.Currency

	if len(report.Entries) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(40, 10, "Salary Breakdown")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Structure: %s (%s)", report.StructureName, report.StructureID)))
	}

	for i, e := range report.Entries {
		b := e.Breakdown
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(40, 10, "Salary Breakdown")
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Structure: %s (%s)", report.StructureName, report.StructureID)))
		pdf.Ln(7)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s", e.label(i))))
		pdf.Ln(7)
		if e.Period != "" {
			pdf.Cell(0, 8, fmt.Sprintf("Effective: %s", e.Period))
			pdf.Ln(7)
		}
		pdf.Cell(0, 8, tr(fmt.Sprintf("Gross (%s): %s", report.PeriodLabel(), FormatCurrency(e.GrossSalary, cur))))
		pdf.Ln(10)

		section := func(title string) {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 8, title)
			pdf.Ln(8)
			pdf.SetFont("Helvetica", "", 11)
		}
		line := func(name, value string) {
			pdf.CellFormat(110, 7, tr(name), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, tr(value), "", 1, "R", false, 0, "")
		}

		section("Earnings")
		for _, l := range b.Earnings {
			name := l.Name
			if !l.IsEnabled {
				name += " (disabled)"
			}
			line(name, FormatCurrency(l.Amount, cur))
		}
		line("Total Earnings", FormatCurrency(b.TotalEarnings, cur))
		pdf.Ln(4)

		section("Deductions")
		for _, l := range b.Deductions {
			name := l.Name
			if !l.IsEnabled {
				name += " (disabled)"
			}
			line(name, FormatCurrency(l.Amount, cur))
		}
		line("Total Deductions", FormatCurrency(b.TotalDeductions, cur))
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "B", 12)
		line("Net Pay", FormatCurrency(b.NetPay, cur))

		if !b.IsValid {
			pdf.Ln(6)
			pdf.SetTextColor(192, 0, 0)
			pdf.MultiCell(0, 6, tr(b.ErrorMessage), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
