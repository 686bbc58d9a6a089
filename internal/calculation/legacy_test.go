package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystruct/salary-breakdown/internal/domain"
)

func TestLegacyNamesIgnoreCaseAndSpace(t *testing.T) {
	tests := []struct {
		name     string
		balancer bool
		basic    bool
	}{
		{name: "Special Allowance", balancer: true},
		{name: "  special allowance\t", balancer: true},
		{name: "SPECIAL ALLOWANCE ", balancer: true},
		{name: "Special Allowances"},
		{name: " Basic Salary ", basic: true},
		{name: "basic salary", basic: true},
		{name: "Basic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.balancer, IsLegacyBalancerName(tt.name))
			assert.Equal(t, tt.basic, IsLegacyBasicName(tt.name))
		})
	}
}

func TestComputeFindsPaddedLegacyBalancer(t *testing.T) {
	s := &domain.Structure{
		ID: "legacy",
		Components: []domain.Component{
			{ID: "basic", Name: " Basic Salary", Kind: domain.KindEarning, CalculationType: domain.CalculationPercentage, Value: d("50")},
			{ID: "special", Name: "Special Allowance ", Kind: domain.KindEarning},
		},
	}
	b := Compute(s, d("1000"), nil, nil)
	line, ok := b.Balancer()
	require.True(t, ok)
	assert.Equal(t, "special", line.ComponentID)
	assert.Equal(t, "500.00", line.Amount.StringFixed(2))

	migrated := MigrateLegacyRoles(s)
	assert.Equal(t, domain.RoleBasic, migrated.Components[0].Role)
	assert.Equal(t, domain.RoleBalancer, migrated.Components[1].Role)
}
