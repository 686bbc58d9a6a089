package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/domain"
	"github.com/paystruct/salary-breakdown/internal/output"
)

type computeOptions struct {
	structure     string
	assignment    string
	roster        string
	format        string
	out           string
	monthly       bool
	migrateLegacy bool
}

func (a *app) newComputeCommand() *cobra.Command {
	var opts computeOptions
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the salary breakdown of an assignment or a roster",
		Example: "  paystruct compute --structure structure.yaml --assignment assignment.yaml\n" +
			"  paystruct compute --structure structure.yaml --roster roster.yaml --format xlsx --out roster.xlsx",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompute(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.structure, "structure", "s", "", "salary structure YAML file")
	f.StringVarP(&opts.assignment, "assignment", "a", "", "assignment YAML file")
	f.StringVarP(&opts.roster, "roster", "r", "", "roster YAML file (many assignments)")
	f.StringVarP(&opts.format, "format", "f", "", "output format (see 'paystruct formats')")
	f.StringVarP(&opts.out, "out", "o", "", "write output to this file instead of stdout")
	f.BoolVar(&opts.monthly, "monthly", false, "show amounts divided by 12")
	f.BoolVar(&opts.migrateLegacy, "migrate-legacy", false, "derive component roles from legacy names")
	_ = cmd.MarkFlagRequired("structure")
	cmd.MarkFlagsOneRequired("assignment", "roster")
	cmd.MarkFlagsMutuallyExclusive("assignment", "roster")
	return cmd
}

func (a *app) runCompute(cmd *cobra.Command, opts computeOptions) error {
	name := opts.format
	if name == "" {
		name = a.settings.Output.Format
	}
	formatter, err := output.LookupFormatter(name)
	if err != nil {
		return err
	}

	p := parser(opts.migrateLegacy)
	structure, err := p.LoadStructure(opts.structure)
	if err != nil {
		return err
	}
	if structure.Currency == "" {
		structure.Currency = a.settings.Output.Currency
	}

	calc := a.calculator()
	var results []calculation.RosterResult
	if opts.assignment != "" {
		assignment, err := p.LoadAssignment(opts.assignment, structure)
		if err != nil {
			return err
		}
		b, err := calc.Calculate(structure, assignment)
		if err != nil {
			return err
		}
		results = []calculation.RosterResult{{Assignment: *assignment, Breakdown: b}}
	} else {
		roster, err := p.LoadRoster(opts.roster, structure)
		if err != nil {
			return err
		}
		workers := a.settings.Roster.Workers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		results, err = calc.CalculateRoster(cmd.Context(), structure, roster.Assignments, workers)
		if err != nil {
			return err
		}
	}

	report := output.NewReport(structure, results, opts.monthly || a.settings.Output.Monthly)
	if opts.out != "" {
		if _, err := output.WriteFormatted(formatter, report, opts.out); err != nil {
			return err
		}
		a.logger.Info("report written", "file", opts.out, "format", formatter.Name(), "entries", len(report.Entries))
	} else if err := output.Render(cmd.OutOrStdout(), formatter, report); err != nil {
		return err
	}

	if n := report.InvalidCount(); n > 0 {
		return fmt.Errorf("%w: %d of %d breakdowns have a negative balancer", domain.ErrInvalidBreakdown, n, len(report.Entries))
	}
	return nil
}
