package domain

import (
	"github.com/shopspring/decimal"

	"github.com/paystruct/salary-breakdown/pkg/dateutil"
)

// Assignment is the per-calculation input: a yearly gross salary applied to a
// structure, with the user's per-component toggles and value overrides.
type Assignment struct {
	EmployeeID  string                     `yaml:"employee_id,omitempty" json:"employee_id,omitempty"`
	StructureID string                     `yaml:"structure_id" json:"structure_id"`
	GrossSalary decimal.Decimal            `yaml:"gross_salary" json:"gross_salary"`
	Toggles     map[string]bool            `yaml:"component_toggles,omitempty" json:"component_toggles,omitempty"`
	Overrides   map[string]decimal.Decimal `yaml:"component_values,omitempty" json:"component_values,omitempty"`
	Effective   dateutil.Period            `yaml:"effective,omitempty" json:"effective,omitempty"`
}

// Enabled returns the toggle state for a component; absent entries are enabled.
func (a *Assignment) Enabled(id string) bool {
	if on, ok := a.Toggles[id]; ok {
		return on
	}
	return true
}

// Override returns the user supplied value for a component, if any.
func (a *Assignment) Override(id string) (decimal.Decimal, bool) {
	v, ok := a.Overrides[id]
	return v, ok
}

// Roster is a batch of assignments against one structure.
type Roster struct {
	StructureID string          `yaml:"structure_id" json:"structure_id"`
	Effective   dateutil.Period `yaml:"effective,omitempty" json:"effective,omitempty"`
	Assignments []Assignment    `yaml:"assignments" json:"assignments"`
}

// Normalize copies roster level defaults into each assignment that leaves them unset.
func (r *Roster) Normalize() {
	for i := range r.Assignments {
		if r.Assignments[i].StructureID == "" {
			r.Assignments[i].StructureID = r.StructureID
		}
		if r.Assignments[i].Effective.IsZero() {
			r.Assignments[i].Effective = r.Effective
		}
	}
}
