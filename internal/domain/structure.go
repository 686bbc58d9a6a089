package domain

import (
	"github.com/shopspring/decimal"
)

// ComponentKind separates earnings from deductions
type ComponentKind string

const (
	KindEarning   ComponentKind = "earning"
	KindDeduction ComponentKind = "deduction"
)

// CalculationType tells how a component's Value is interpreted
type CalculationType string

const (
	// CalculationFixed means Value is a yearly currency amount
	CalculationFixed CalculationType = "fixed"
	// CalculationPercentage means Value is a percentage (0-100) of gross salary
	CalculationPercentage CalculationType = "percentage"
)

// Role is the well-known part a component plays in a structure.
// It is set when the structure is authored; an empty role is treated as standard.
type Role string

const (
	RoleStandard Role = "standard"
	RoleBasic    Role = "basic"
	RoleBalancer Role = "balancer"
)

// Component is a single line of a compensation structure
type Component struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Kind            ComponentKind   `yaml:"kind" json:"kind"`
	CalculationType CalculationType `yaml:"calculation_type" json:"calculation_type"`
	Value           decimal.Decimal `yaml:"value" json:"value"`
	IsBalancer      bool            `yaml:"is_balancer,omitempty" json:"is_balancer,omitempty"`
	SystemLocked    bool            `yaml:"is_system_locked,omitempty" json:"is_system_locked,omitempty"`
	Role            Role            `yaml:"role,omitempty" json:"role,omitempty"`
}

// IsEarning reports whether the component adds to total earnings
func (c Component) IsEarning() bool { return c.Kind == KindEarning }

// IsDeduction reports whether the component reduces net pay
func (c Component) IsDeduction() bool { return c.Kind == KindDeduction }

// IsPercentage reports whether Value is a percentage of gross salary
func (c Component) IsPercentage() bool { return c.CalculationType == CalculationPercentage }

// Balancer reports whether the component is an explicitly flagged balancer earning.
// Name based detection lives in the calculation package's legacy shim.
func (c Component) Balancer() bool {
	return c.IsEarning() && (c.IsBalancer || c.Role == RoleBalancer)
}

// Locked reports whether the enabled state of the component cannot be toggled.
// Basic salary and balancer earnings are always locked.
func (c Component) Locked() bool {
	return c.SystemLocked || c.Role == RoleBasic || c.Balancer()
}

// EffectiveRole returns the component role, defaulting to standard.
func (c Component) EffectiveRole() Role {
	if c.Role == "" {
		if c.Balancer() {
			return RoleBalancer
		}
		return RoleStandard
	}
	return c.Role
}

// Structure is a named compensation plan: an ordered set of components.
// It is read-only input to the calculator.
type Structure struct {
	ID         string      `yaml:"id" json:"id"`
	Name       string      `yaml:"name" json:"name"`
	Currency   string      `yaml:"currency,omitempty" json:"currency,omitempty"`
	Components []Component `yaml:"components" json:"components"`
}

// Earnings returns the earning components in definition order
func (s *Structure) Earnings() []Component {
	return s.filter(KindEarning)
}

// Deductions returns the deduction components in definition order
func (s *Structure) Deductions() []Component {
	return s.filter(KindDeduction)
}

func (s *Structure) filter(kind ComponentKind) []Component {
	out := make([]Component, 0, len(s.Components))
	for _, c := range s.Components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Component looks up a component by id
func (s *Structure) Component(id string) (Component, bool) {
	for _, c := range s.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// Clone returns a deep copy of the structure
func (s *Structure) Clone() *Structure {
	cp := *s
	cp.Components = append([]Component(nil), s.Components...)
	return &cp
}
