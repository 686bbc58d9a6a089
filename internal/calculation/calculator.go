package calculation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/paystruct/salary-breakdown/internal/domain"
)

// Calculator runs assignments through Compute and reports invalid results to its logger.
type Calculator struct {
	Logger Logger
}

// NewCalculator creates a calculator with a no-op logger
func NewCalculator() *Calculator {
	return &Calculator{Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

// Calculate computes the breakdown of a single assignment.
// An invalid breakdown is returned as data; the error is reserved for
// assignments that cannot be applied to the structure at all.
func (c *Calculator) Calculate(structure *domain.Structure, a *domain.Assignment) (domain.Breakdown, error) {
	if structure == nil {
		return domain.Breakdown{}, domain.ErrStructureNotFound
	}
	if a.StructureID != "" && a.StructureID != structure.ID {
		return domain.Breakdown{}, fmt.Errorf("%w: assignment references %q, structure is %q",
			domain.ErrStructureMismatch, a.StructureID, structure.ID)
	}

	b := Compute(structure, a.GrossSalary, a.Toggles, a.Overrides)

	c.Logger.Debugf("structure=%s employee=%s gross=%s earnings=%s deductions=%s net=%s",
		structure.ID, a.EmployeeID, a.GrossSalary.StringFixed(2),
		b.TotalEarnings.StringFixed(2), b.TotalDeductions.StringFixed(2), b.NetPay.StringFixed(2))
	if !b.IsValid {
		c.Logger.Warnf("structure=%s employee=%s invalid breakdown: %s", structure.ID, a.EmployeeID, b.ErrorMessage)
	}
	return b, nil
}

// RosterResult pairs an assignment with its computed breakdown
type RosterResult struct {
	Assignment domain.Assignment
	Breakdown  domain.Breakdown
}

// CalculateRoster computes every assignment concurrently, using at most
// workers goroutines (unbounded when workers <= 0). Results keep input order.
func (c *Calculator) CalculateRoster(ctx context.Context, structure *domain.Structure, assignments []domain.Assignment, workers int) ([]RosterResult, error) {
	if structure == nil {
		return nil, domain.ErrStructureNotFound
	}
	results := make([]RosterResult, len(assignments))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range assignments {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := c.Calculate(structure, &assignments[i])
			if err != nil {
				return fmt.Errorf("assignment %d (%s): %w", i, assignments[i].EmployeeID, err)
			}
			results[i] = RosterResult{Assignment: assignments[i], Breakdown: b}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	invalid := 0
	for _, r := range results {
		if !r.Breakdown.IsValid {
			invalid++
		}
	}
	c.Logger.Infof("roster computed: structure=%s assignments=%d invalid=%d", structure.ID, len(results), invalid)
	return results, nil
}
