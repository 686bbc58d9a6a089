package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per component line, followed by the totals of each entry.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

var csvHeader = []string{"EmployeeID", "Period", "GrossSalary", "Kind", "ComponentID", "Component", "Amount", "Enabled", "Balancer", "Valid"}

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for i, e := range report.Entries {
		b := e.Breakdown
		prefix := []string{e.label(i), e.Period, e.GrossSalary.StringFixed(2)}
		valid := boolToString(b.IsValid)
		row := func(cols ...string) error {
			return w.Write(append(append([]string(nil), prefix...), cols...))
		}
		for _, l := range b.Earnings {
			if err := row("earning", l.ComponentID, l.Name, l.Amount.StringFixed(2), boolToString(l.IsEnabled), boolToString(l.IsBalancer), valid); err != nil {
				return nil, err
			}
		}
		for _, l := range b.Deductions {
			if err := row("deduction", l.ComponentID, l.Name, l.Amount.StringFixed(2), boolToString(l.IsEnabled), "false", valid); err != nil {
				return nil, err
			}
		}
		totals := []struct{ id, name, amount string }{
			{"total_earnings", "Total Earnings", b.TotalEarnings.StringFixed(2)},
			{"total_deductions", "Total Deductions", b.TotalDeductions.StringFixed(2)},
			{"net_pay", "Net Pay", b.NetPay.StringFixed(2)},
		}
		for _, t := range totals {
			if err := row("total", t.id, t.name, t.amount, "", "", valid); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
