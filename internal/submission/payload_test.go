package submission

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/domain"
	"github.com/paystruct/salary-breakdown/pkg/dateutil"
)

func fixedKey(t *testing.T, key string) {
	t.Helper()
	prev := newKey
	newKey = func() string { return key }
	t.Cleanup(func() { newKey = prev })
}

func testStructure() *domain.Structure {
	return &domain.Structure{
		ID:   "std",
		Name: "Standard",
		Components: []domain.Component{
			{ID: "basic", Name: "Basic Salary", Kind: domain.KindEarning, CalculationType: domain.CalculationPercentage, Value: decimal.NewFromInt(50), Role: domain.RoleBasic},
			{ID: "hra", Name: "HRA", Kind: domain.KindEarning, CalculationType: domain.CalculationPercentage, Value: decimal.NewFromInt(20)},
			{ID: "special", Name: "Special Allowance", Kind: domain.KindEarning, IsBalancer: true},
			{ID: "dup", Name: "special allowance", Kind: domain.KindEarning},
			{ID: "pf", Name: "PF", Kind: domain.KindDeduction, CalculationType: domain.CalculationFixed, Value: decimal.NewFromInt(1800)},
		},
	}
}

func TestBuild(t *testing.T) {
	fixedKey(t, "key-1")
	s := testStructure()
	a := &domain.Assignment{
		EmployeeID:  "E1",
		StructureID: "std",
		GrossSalary: decimal.NewFromInt(100000),
		Toggles:     map[string]bool{"hra": false, "basic": false, "pf": false, "ghost": true},
		Overrides:   map[string]decimal.Decimal{"basic": decimal.NewFromInt(55), "special": decimal.NewFromInt(1)},
		Effective:   dateutil.Period{Month: 4, Year: 2025},
	}
	b := calculation.Compute(s, a.GrossSalary, a.Toggles, a.Overrides)
	require.True(t, b.IsValid)

	p, err := Build(s, a, b)
	require.NoError(t, err)

	assert.Equal(t, "std", p.StructureID)
	assert.Equal(t, "E1", p.EmployeeID)
	assert.Equal(t, 4, p.EffectiveMonth)
	assert.Equal(t, 2025, p.EffectiveYear)
	assert.Equal(t, "key-1", p.IdempotencyKey)
	assert.Equal(t, map[string]bool{"basic": true, "hra": false, "pf": false}, p.ComponentToggles)
	require.Len(t, p.ComponentValues, 3)
	assert.Equal(t, "55", p.ComponentValues["basic"].String())
	assert.Equal(t, "20", p.ComponentValues["hra"].String())
	assert.Equal(t, "1800", p.ComponentValues["pf"].String())
	assert.NotContains(t, p.ComponentValues, "special")
	assert.NotContains(t, p.ComponentValues, "dup")
	assert.NotContains(t, p.ComponentToggles, "ghost")
}

func TestBuildRefusesInvalidBreakdown(t *testing.T) {
	s := testStructure()
	a := &domain.Assignment{
		StructureID: "std",
		GrossSalary: decimal.NewFromInt(100000),
		Overrides:   map[string]decimal.Decimal{"basic": decimal.NewFromInt(90)},
	}
	b := calculation.Compute(s, a.GrossSalary, a.Toggles, a.Overrides)
	require.False(t, b.IsValid)

	p, err := Build(s, a, b)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrInvalidBreakdown)

	_, err = Build(nil, a, domain.Breakdown{IsValid: true})
	assert.ErrorIs(t, err, domain.ErrStructureNotFound)
}

func TestEncodeUsesNumbers(t *testing.T) {
	fixedKey(t, "key-2")
	s := testStructure()
	a := &domain.Assignment{
		StructureID: "std",
		GrossSalary: decimal.RequireFromString("100000.50"),
		Overrides:   map[string]decimal.Decimal{"hra": decimal.RequireFromString("12.5")},
		Effective:   dateutil.Period{Month: 11, Year: 2025},
	}
	p, err := Build(s, a, calculation.Compute(s, a.GrossSalary, a.Toggles, a.Overrides))
	require.NoError(t, err)

	data, err := Encode(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "std", decoded["structure_id"])
	assert.Equal(t, 100000.5, decoded["gross_salary"])
	assert.Equal(t, float64(11), decoded["effective_month"])
	assert.Equal(t, float64(2025), decoded["effective_year"])
	assert.Equal(t, "key-2", decoded["idempotency_key"])
	assert.NotContains(t, decoded, "employee_id")

	values := decoded["component_values"].(map[string]any)
	assert.Equal(t, 12.5, values["hra"])
	assert.Equal(t, float64(50), values["basic"])
	toggles := decoded["component_toggles"].(map[string]any)
	assert.Equal(t, true, toggles["hra"])
}

func TestDefaultKeyIsUUID(t *testing.T) {
	k1, k2 := newKey(), newKey()
	assert.Len(t, k1, 36)
	assert.NotEqual(t, k1, k2)
}
