package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/domain"
	"github.com/paystruct/salary-breakdown/pkg/dateutil"
)

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of structure, assignment and roster files
type InputParser struct {
	// MigrateLegacy assigns explicit roles to components that only carry the
	// conventional "Basic Salary" / "Special Allowance" names.
	MigrateLegacy bool
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadStructure loads and validates a salary structure from a YAML or JSON file
func (ip *InputParser) LoadStructure(filename string) (*domain.Structure, error) {
	var structure domain.Structure
	if err := readYAML(filename, &structure); err != nil {
		return nil, err
	}

	if ip.MigrateLegacy {
		structure = *calculation.MigrateLegacyRoles(&structure)
	}

	if err := ip.ValidateStructure(&structure); err != nil {
		return nil, fmt.Errorf("structure validation failed: %w", err)
	}
	return &structure, nil
}

// LoadAssignment loads an assignment and validates it against its structure
func (ip *InputParser) LoadAssignment(filename string, structure *domain.Structure) (*domain.Assignment, error) {
	var assignment domain.Assignment
	if err := readYAML(filename, &assignment); err != nil {
		return nil, err
	}
	if err := ip.ValidateAssignment(structure, &assignment); err != nil {
		return nil, fmt.Errorf("assignment validation failed: %w", err)
	}
	return &assignment, nil
}

// LoadRoster loads a batch of assignments and validates each one
func (ip *InputParser) LoadRoster(filename string, structure *domain.Structure) (*domain.Roster, error) {
	var roster domain.Roster
	if err := readYAML(filename, &roster); err != nil {
		return nil, err
	}
	roster.Normalize()

	if len(roster.Assignments) == 0 {
		return nil, fmt.Errorf("roster %s has no assignments", filename)
	}
	seen := make(map[string]bool, len(roster.Assignments))
	for i := range roster.Assignments {
		a := &roster.Assignments[i]
		if a.EmployeeID != "" {
			if seen[a.EmployeeID] {
				return nil, fmt.Errorf("roster assignment %d: employee %s listed twice", i, a.EmployeeID)
			}
			seen[a.EmployeeID] = true
		}
		if err := ip.ValidateAssignment(structure, a); err != nil {
			return nil, fmt.Errorf("roster assignment %d (%s) validation failed: %w", i, a.EmployeeID, err)
		}
	}
	return &roster, nil
}

func readYAML(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", filename, err)
	}
	return nil
}

// ValidateStructure checks the invariants a structure must hold before it is used.
// More than one flagged balancer is rejected here so the calculator never has
// to choose between them.
func (ip *InputParser) ValidateStructure(structure *domain.Structure) error {
	if structure.ID == "" {
		return fmt.Errorf("structure id is required")
	}
	if structure.Name == "" {
		return fmt.Errorf("structure name is required")
	}
	if len(structure.Components) == 0 {
		return fmt.Errorf("structure %s has no components", structure.ID)
	}

	ids := make(map[string]bool, len(structure.Components))
	var balancers []string
	for i, c := range structure.Components {
		if c.ID == "" {
			return fmt.Errorf("%w: component %d has no id", domain.ErrInvalidComponent, i)
		}
		if ids[c.ID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateComponentID, c.ID)
		}
		ids[c.ID] = true

		if err := validateComponent(&c); err != nil {
			return fmt.Errorf("component %s: %w", c.ID, err)
		}
		if c.Balancer() {
			balancers = append(balancers, c.ID)
		}
	}
	if len(balancers) > 1 {
		return fmt.Errorf("%w: %v", domain.ErrMultipleBalancers, balancers)
	}
	return nil
}

func validateComponent(c *domain.Component) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidComponent)
	}
	switch c.Kind {
	case domain.KindEarning, domain.KindDeduction:
	default:
		return fmt.Errorf("%w: kind must be 'earning' or 'deduction', got %q", domain.ErrInvalidComponent, c.Kind)
	}
	switch c.Role {
	case "", domain.RoleStandard, domain.RoleBasic, domain.RoleBalancer:
	default:
		return fmt.Errorf("%w: role must be 'basic', 'balancer' or 'standard', got %q", domain.ErrInvalidComponent, c.Role)
	}
	if c.IsDeduction() && (c.IsBalancer || c.Role == domain.RoleBalancer || c.Role == domain.RoleBasic) {
		return fmt.Errorf("%w: a deduction cannot have role %q", domain.ErrInvalidComponent, c.EffectiveRole())
	}
	if c.Balancer() {
		// the balancer amount is always derived
		return nil
	}
	switch c.CalculationType {
	case domain.CalculationFixed, domain.CalculationPercentage:
	default:
		return fmt.Errorf("%w: calculation type must be 'fixed' or 'percentage', got %q", domain.ErrInvalidComponent, c.CalculationType)
	}
	return validateValue(c, c.Value)
}

func validateValue(c *domain.Component, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: value cannot be negative", domain.ErrInvalidComponent)
	}
	if c.IsPercentage() && v.GreaterThan(hundred) {
		return fmt.Errorf("%w: percentage must be between 0 and 100, got %s", domain.ErrInvalidComponent, v.String())
	}
	return nil
}

// ValidateAssignment checks an assignment against the structure it targets.
// Unknown component ids are allowed; the calculator ignores them.
func (ip *InputParser) ValidateAssignment(structure *domain.Structure, assignment *domain.Assignment) error {
	if structure != nil && assignment.StructureID != "" && assignment.StructureID != structure.ID {
		return fmt.Errorf("%w: %q vs %q", domain.ErrStructureMismatch, assignment.StructureID, structure.ID)
	}
	if assignment.GrossSalary.IsNegative() {
		return fmt.Errorf("gross salary cannot be negative")
	}
	if !assignment.Effective.IsZero() {
		if err := assignment.Effective.Validate(); err != nil {
			return err
		}
	}
	if structure == nil {
		return nil
	}
	for id, v := range assignment.Overrides {
		c, ok := structure.Component(id)
		if !ok || c.Balancer() {
			continue
		}
		if err := validateValue(&c, v); err != nil {
			return fmt.Errorf("override for %s: %w", id, err)
		}
	}
	return nil
}

// WriteYAML saves any input document (structure, assignment, roster) as YAML
func WriteYAML(filename string, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleStructure returns a typical structure: percentage basic salary
// and HRA, a fixed conveyance allowance, a balancing special allowance and
// two deductions.
func (ip *InputParser) CreateExampleStructure() *domain.Structure {
	return &domain.Structure{
		ID:       "standard-2025",
		Name:     "Standard Compensation 2025",
		Currency: "INR",
		Components: []domain.Component{
			{
				ID:              "basic",
				Name:            "Basic Salary",
				Kind:            domain.KindEarning,
				CalculationType: domain.CalculationPercentage,
				Value:           decimal.NewFromInt(50),
				SystemLocked:    true,
				Role:            domain.RoleBasic,
			},
			{
				ID:              "hra",
				Name:            "HRA",
				Kind:            domain.KindEarning,
				CalculationType: domain.CalculationPercentage,
				Value:           decimal.NewFromInt(20),
			},
			{
				ID:              "conveyance",
				Name:            "Conveyance Allowance",
				Kind:            domain.KindEarning,
				CalculationType: domain.CalculationFixed,
				Value:           decimal.NewFromInt(19200),
			},
			{
				ID:              "special",
				Name:            "Special Allowance",
				Kind:            domain.KindEarning,
				CalculationType: domain.CalculationFixed,
				IsBalancer:      true,
				SystemLocked:    true,
				Role:            domain.RoleBalancer,
			},
			{
				ID:              "pf",
				Name:            "Provident Fund",
				Kind:            domain.KindDeduction,
				CalculationType: domain.CalculationFixed,
				Value:           decimal.NewFromInt(21600),
			},
			{
				ID:              "pt",
				Name:            "Professional Tax",
				Kind:            domain.KindDeduction,
				CalculationType: domain.CalculationFixed,
				Value:           decimal.NewFromInt(2400),
			},
		},
	}
}

// CreateExampleAssignment returns an assignment for the example structure
func (ip *InputParser) CreateExampleAssignment() *domain.Assignment {
	return &domain.Assignment{
		EmployeeID:  "EMP-001",
		StructureID: "standard-2025",
		GrossSalary: decimal.NewFromInt(1200000),
		Toggles:     map[string]bool{"conveyance": false},
		Overrides:   map[string]decimal.Decimal{"hra": decimal.NewFromInt(25)},
		Effective:   dateutil.Period{Month: 4, Year: 2025},
	}
}
