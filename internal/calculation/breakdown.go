package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paystruct/salary-breakdown/internal/domain"
	money "github.com/paystruct/salary-breakdown/pkg/decimal"
)

// Compute resolves a structure against a yearly gross salary and the user's
// per-component toggles and value overrides.
//
// Every earning and deduction amount is rounded to cents before it is summed,
// and the balancer absorbs the residual of the already rounded amounts. A gross
// salary of zero (or below) is the "not yet entered" state: all amounts are zero
// and the result is valid. Ids in toggles or overrides that the structure does
// not define are ignored, and an override for the balancer is never used.
//
// Compute is a pure function: it performs no I/O and keeps no state, so it is
// safe to call from any number of goroutines.
func Compute(structure *domain.Structure, gross decimal.Decimal, toggles map[string]bool, overrides map[string]decimal.Decimal) domain.Breakdown {
	b := domain.Breakdown{
		Earnings:        []domain.EarningLine{},
		Deductions:      []domain.DeductionLine{},
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
		IsValid:         true,
	}
	if structure == nil {
		return b
	}

	sel := &domain.Assignment{Toggles: toggles}
	grossSalary := money.NewMoneyFromDecimal(gross)
	entered := grossSalary.IsPositive()

	earnings := structure.Earnings()
	balancerIdx := selectBalancer(earnings)
	balancerLine := -1

	nonBalancer := money.Zero()
	for i, c := range earnings {
		if i == balancerIdx {
			balancerLine = len(b.Earnings)
			b.Earnings = append(b.Earnings, domain.EarningLine{
				ComponentID: c.ID,
				Name:        c.Name,
				Amount:      decimal.Zero,
				IsBalancer:  true,
				IsEnabled:   true,
			})
			continue
		}
		if balancerIdx >= 0 && isBalancerCandidate(c) {
			// duplicate balancer: neither shown nor summed
			continue
		}

		enabled := c.Locked() || sel.Enabled(c.ID)
		amount := money.Zero()
		if entered && enabled {
			amount = componentAmount(c, grossSalary, overrides)
			nonBalancer = nonBalancer.Add(amount)
		}
		b.Earnings = append(b.Earnings, domain.EarningLine{
			ComponentID: c.ID,
			Name:        c.Name,
			Amount:      amount.Decimal,
			IsEnabled:   enabled,
		})
	}

	totalEarnings := nonBalancer
	if balancerLine >= 0 && entered {
		residual := grossSalary.Sub(nonBalancer)
		if residual.IsNegative() {
			b.IsValid = false
			b.ErrorMessage = negativeBalancerMessage(b.Earnings[balancerLine].Name, nonBalancer, grossSalary)
		}
		amount := money.Max(residual.Round(), money.Zero())
		b.Earnings[balancerLine].Amount = amount.Decimal
		totalEarnings = totalEarnings.Add(amount)
	}

	totalDeductions := money.Zero()
	for _, c := range structure.Deductions() {
		enabled := sel.Enabled(c.ID)
		amount := money.Zero()
		if entered && enabled {
			amount = componentAmount(c, grossSalary, overrides)
			totalDeductions = totalDeductions.Add(amount)
		}
		b.Deductions = append(b.Deductions, domain.DeductionLine{
			ComponentID: c.ID,
			Name:        c.Name,
			Amount:      amount.Decimal,
			IsEnabled:   enabled,
		})
	}

	b.TotalEarnings = totalEarnings.Round().Decimal
	b.TotalDeductions = totalDeductions.Round().Decimal
	b.NetPay = b.TotalEarnings.Sub(b.TotalDeductions)
	return b
}

// EffectiveValue returns the value the calculator uses for a component: the
// override when one is supplied, otherwise the structure's own value.
// Balancers have no effective value of their own.
func EffectiveValue(c domain.Component, overrides map[string]decimal.Decimal) decimal.Decimal {
	sel := domain.Assignment{Overrides: overrides}
	if v, ok := sel.Override(c.ID); ok {
		return v
	}
	return c.Value
}

func componentAmount(c domain.Component, gross money.Money, overrides map[string]decimal.Decimal) money.Money {
	value := EffectiveValue(c, overrides)
	if c.IsPercentage() {
		return money.PercentOf(gross, value).Round()
	}
	return money.NewMoneyFromDecimal(value).Round()
}

func negativeBalancerMessage(name string, earnings, gross money.Money) string {
	if name == "" {
		name = "Balancer component"
	}
	return fmt.Sprintf("%s cannot be negative: enabled earnings %s exceed gross salary %s by %s",
		name, earnings.String(), gross.Round().String(), earnings.Sub(gross).Round().String())
}
