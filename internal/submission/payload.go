// Package submission serializes a validated assignment into the document the
// persistence backend accepts when a salary structure is assigned.
package submission

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/domain"
)

// newKey returns a fresh idempotency key (override in tests for determinism).
var newKey = func() string { return uuid.NewString() }

// Payload is the assignment document sent to the backend on save.
type Payload struct {
	StructureID      string                     `json:"structure_id"`
	EmployeeID       string                     `json:"employee_id,omitempty"`
	GrossSalary      decimal.Decimal            `json:"gross_salary"`
	EffectiveMonth   int                        `json:"effective_month,omitempty"`
	EffectiveYear    int                        `json:"effective_year,omitempty"`
	ComponentToggles map[string]bool            `json:"component_toggles"`
	ComponentValues  map[string]decimal.Decimal `json:"component_values"`
	IdempotencyKey   string                     `json:"idempotency_key"`
}

// Build turns an assignment and its breakdown into a payload.
//
// Toggles and values are resolved for every non-balancer component of the
// structure: locked components are always reported enabled and values fall
// back to the structure's own. The balancer is left out since its value is
// derived. An invalid breakdown is refused with ErrInvalidBreakdown.
func Build(structure *domain.Structure, a *domain.Assignment, b domain.Breakdown) (*Payload, error) {
	if structure == nil {
		return nil, domain.ErrStructureNotFound
	}
	if !b.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBreakdown, b.ErrorMessage)
	}

	shown := make(map[string]bool, len(b.Earnings)+len(b.Deductions))
	for _, e := range b.Earnings {
		if !e.IsBalancer {
			shown[e.ComponentID] = true
		}
	}
	for _, d := range b.Deductions {
		shown[d.ComponentID] = true
	}

	p := &Payload{
		StructureID:      structure.ID,
		EmployeeID:       a.EmployeeID,
		GrossSalary:      a.GrossSalary,
		EffectiveMonth:   a.Effective.Month,
		EffectiveYear:    a.Effective.Year,
		ComponentToggles: make(map[string]bool, len(shown)),
		ComponentValues:  make(map[string]decimal.Decimal, len(shown)),
		IdempotencyKey:   newKey(),
	}
	for _, c := range structure.Components {
		if !shown[c.ID] {
			continue
		}
		p.ComponentToggles[c.ID] = (c.IsEarning() && c.Locked()) || a.Enabled(c.ID)
		p.ComponentValues[c.ID] = calculation.EffectiveValue(c, a.Overrides)
	}
	return p, nil
}

// MarshalJSON renders decimals as JSON numbers rather than strings.
func (p Payload) MarshalJSON() ([]byte, error) {
	values := make(map[string]json.Number, len(p.ComponentValues))
	for id, v := range p.ComponentValues {
		values[id] = json.Number(v.String())
	}
	type wire struct {
		StructureID      string                 `json:"structure_id"`
		EmployeeID       string                 `json:"employee_id,omitempty"`
		GrossSalary      json.Number            `json:"gross_salary"`
		EffectiveMonth   int                    `json:"effective_month,omitempty"`
		EffectiveYear    int                    `json:"effective_year,omitempty"`
		ComponentToggles map[string]bool        `json:"component_toggles"`
		ComponentValues  map[string]json.Number `json:"component_values"`
		IdempotencyKey   string                 `json:"idempotency_key"`
	}
	return json.Marshal(wire{
		StructureID:      p.StructureID,
		EmployeeID:       p.EmployeeID,
		GrossSalary:      json.Number(p.GrossSalary.String()),
		EffectiveMonth:   p.EffectiveMonth,
		EffectiveYear:    p.EffectiveYear,
		ComponentToggles: p.ComponentToggles,
		ComponentValues:  values,
		IdempotencyKey:   p.IdempotencyKey,
	})
}

// Encode serializes the payload as indented JSON
func Encode(p *Payload) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
