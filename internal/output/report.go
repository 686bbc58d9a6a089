package output

import (
	"github.com/shopspring/decimal"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/domain"
)

// Report is the formatter input: one structure applied to one or more assignments.
type Report struct {
	StructureID   string  `json:"structure_id"`
	StructureName string  `json:"structure_name"`
	Currency      string  `json:"currency,omitempty"`
	Monthly       bool    `json:"monthly"`
	Entries       []Entry `json:"entries"`
}

// Entry is a single computed breakdown.
type Entry struct {
	EmployeeID  string           `json:"employee_id,omitempty"`
	Period      string           `json:"period,omitempty"`
	GrossSalary decimal.Decimal  `json:"gross_salary"`
	Breakdown   domain.Breakdown `json:"breakdown"`
}

// NewReport builds a report from calculator results. When monthly is set every
// amount (gross included) is shown divided by 12.
func NewReport(structure *domain.Structure, results []calculation.RosterResult, monthly bool) *Report {
	r := &Report{
		StructureID:   structure.ID,
		StructureName: structure.Name,
		Currency:      structure.Currency,
		Monthly:       monthly,
		Entries:       make([]Entry, 0, len(results)),
	}
	for _, res := range results {
		e := Entry{
			EmployeeID:  res.Assignment.EmployeeID,
			Period:      res.Assignment.Effective.String(),
			GrossSalary: res.Assignment.GrossSalary,
			Breakdown:   res.Breakdown,
		}
		if monthly {
			e.GrossSalary = e.GrossSalary.Div(decimal.NewFromInt(12)).Round(2)
			e.Breakdown = e.Breakdown.Monthly()
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

// InvalidCount returns the number of entries whose breakdown is invalid.
func (r *Report) InvalidCount() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Breakdown.IsValid {
			n++
		}
	}
	return n
}

// PeriodLabel describes the amounts of the report ("Yearly" or "Monthly").
func (r *Report) PeriodLabel() string {
	if r.Monthly {
		return "Monthly"
	}
	return "Yearly"
}

func (e Entry) label(i int) string {
	if e.EmployeeID != "" {
		return e.EmployeeID
	}
	return "#" + intToString(i+1)
}
