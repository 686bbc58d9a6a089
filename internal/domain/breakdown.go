package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/paystruct/salary-breakdown/pkg/decimal"
)

// EarningLine is one resolved earning of a breakdown
type EarningLine struct {
	ComponentID string          `json:"component_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsBalancer  bool            `json:"is_balancer"`
	IsEnabled   bool            `json:"is_enabled"`
}

// DeductionLine is one resolved deduction of a breakdown
type DeductionLine struct {
	ComponentID string          `json:"component_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsEnabled   bool            `json:"is_enabled"`
}

// Breakdown is the fully resolved result of applying a gross salary to a structure.
// A negative balancer is reported through IsValid/ErrorMessage, never as an error.
type Breakdown struct {
	Earnings        []EarningLine   `json:"earnings"`
	Deductions      []DeductionLine `json:"deductions"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	IsValid         bool            `json:"is_valid"`
	ErrorMessage    string          `json:"error_message,omitempty"`
}

// Err returns ErrNegativeBalancer wrapped with the message when the breakdown is invalid.
func (b *Breakdown) Err() error {
	if b.IsValid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNegativeBalancer, b.ErrorMessage)
}

// Balancer returns the balancer line, if the structure has one.
func (b *Breakdown) Balancer() (EarningLine, bool) {
	for _, e := range b.Earnings {
		if e.IsBalancer {
			return e, true
		}
	}
	return EarningLine{}, false
}

// Monthly returns a copy with every amount divided by 12 and rounded to cents.
// It is a display view; totals are recomputed from the yearly figures.
func (b Breakdown) Monthly() Breakdown {
	m := func(d decimal.Decimal) decimal.Decimal {
		return money.NewMoneyFromDecimal(d).Monthly().Round().Decimal
	}
	out := b
	out.Earnings = make([]EarningLine, len(b.Earnings))
	for i, e := range b.Earnings {
		e.Amount = m(e.Amount)
		out.Earnings[i] = e
	}
	out.Deductions = make([]DeductionLine, len(b.Deductions))
	for i, d := range b.Deductions {
		d.Amount = m(d.Amount)
		out.Deductions[i] = d
	}
	out.TotalEarnings = m(b.TotalEarnings)
	out.TotalDeductions = m(b.TotalDeductions)
	out.NetPay = m(b.NetPay)
	return out
}
