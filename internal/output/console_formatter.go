package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter renders each breakdown as an aligned text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SALARY BREAKDOWN: %s (%s)\n", report.StructureName, report.StructureID)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Amounts: %s\n", report.PeriodLabel())

	cur := report.Currency
	for i, e := range report.Entries {
		b := e.Breakdown
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Employee: %s", e.label(i))
		if e.Period != "" {
			fmt.Fprintf(&buf, "  Effective: %s", e.Period)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Gross Salary: %s\n", FormatCurrency(e.GrossSalary, cur))

		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "EARNINGS\t\t")
		for _, l := range b.Earnings {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", l.Name, FormatCurrency(l.Amount, cur), lineNote(l.IsEnabled, l.IsBalancer))
		}
		fmt.Fprintf(tw, "  Total Earnings\t%s\t\n", FormatCurrency(b.TotalEarnings, cur))
		fmt.Fprintln(tw, "DEDUCTIONS\t\t")
		for _, l := range b.Deductions {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", l.Name, FormatCurrency(l.Amount, cur), lineNote(l.IsEnabled, false))
		}
		fmt.Fprintf(tw, "  Total Deductions\t%s\t\n", FormatCurrency(b.TotalDeductions, cur))
		fmt.Fprintf(tw, "NET PAY\t%s\t\n", FormatCurrency(b.NetPay, cur))
		if err := tw.Flush(); err != nil {
			return nil, err
		}
		if !b.IsValid {
			fmt.Fprintf(&buf, "INVALID: %s\n", b.ErrorMessage)
		}
	}

	if n := report.InvalidCount(); n > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%d of %d breakdowns are invalid and cannot be submitted\n", n, len(report.Entries))
	}
	return buf.Bytes(), nil
}

func lineNote(enabled, balancer bool) string {
	switch {
	case balancer:
		return "(balancer)"
	case !enabled:
		return "(disabled)"
	}
	return ""
}
