package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/paystruct/salary-breakdown/internal/domain"
	money "github.com/paystruct/salary-breakdown/pkg/decimal"
)

var cent = decimal.New(1, -2)

const maxCentAdjustments = 100

// MinimumGross returns the smallest positive gross salary, in cents, for which
// the breakdown under the given toggles and overrides is valid.
//
// The estimate solves gross*(1 - pct/100) = fixed for the enabled non-balancer
// earnings and is then corrected cent by cent against Compute, since
// per-component rounding can move the boundary. A structure without a balancer
// (or a nil structure) is valid for every gross and yields zero. The second
// result is false, with a zero gross, when no gross works: percentages reaching
// 100% alongside fixed amounts, above 100%, or exactly 100% where rounding
// keeps the balancer negative for every gross searched.
func MinimumGross(structure *domain.Structure, toggles map[string]bool, overrides map[string]decimal.Decimal) (decimal.Decimal, bool) {
	if structure == nil {
		return decimal.Zero, true
	}
	sel := &domain.Assignment{Toggles: toggles}
	earnings := structure.Earnings()
	balancerIdx := selectBalancer(earnings)
	if balancerIdx < 0 {
		return decimal.Zero, true
	}

	fixed := money.Zero()
	pct := decimal.Zero
	for i, c := range earnings {
		if i == balancerIdx || isBalancerCandidate(c) {
			continue
		}
		if !c.Locked() && !sel.Enabled(c.ID) {
			continue
		}
		if c.IsPercentage() {
			pct = pct.Add(EffectiveValue(c, overrides))
			continue
		}
		fixed = fixed.Add(componentAmount(c, money.Zero(), overrides))
	}

	share := decimal.NewFromInt(1).Sub(pct.Div(decimal.NewFromInt(100)))
	gross := cent
	switch {
	case share.IsPositive():
		if estimate := fixed.Decimal.Div(share).RoundCeil(2); estimate.GreaterThan(cent) {
			gross = estimate
		}
	case share.IsZero() && fixed.IsZero():
		// only rounding decides; search upwards from one cent
	default:
		return decimal.Zero, false
	}
	for i := 0; i < maxCentAdjustments && gross.GreaterThan(cent); i++ {
		lower := gross.Sub(cent)
		if !valid(structure, lower, toggles, overrides) {
			break
		}
		gross = lower
	}
	for i := 0; i < maxCentAdjustments; i++ {
		if valid(structure, gross, toggles, overrides) {
			return gross, true
		}
		gross = gross.Add(cent)
	}
	return decimal.Zero, false
}

func valid(structure *domain.Structure, gross decimal.Decimal, toggles map[string]bool, overrides map[string]decimal.Decimal) bool {
	return Compute(structure, gross, toggles, overrides).IsValid
}
