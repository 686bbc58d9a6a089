package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/calculation"
)

func (a *app) newValidateCommand() *cobra.Command {
	var structurePath, assignmentPath, rosterPath string
	var migrateLegacy bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a salary structure and, optionally, an assignment or roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := parser(migrateLegacy)
			structure, err := p.LoadStructure(structurePath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			balancer := "none"
			for _, c := range structure.Earnings() {
				if c.Balancer() {
					balancer = c.ID
					break
				}
			}
			fmt.Fprintf(out, "structure %s OK: %d earnings, %d deductions, balancer %s\n",
				structure.ID, len(structure.Earnings()), len(structure.Deductions()), balancer)

			if assignmentPath != "" {
				asg, err := p.LoadAssignment(assignmentPath, structure)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "assignment %s OK\n", nameOr(asg.EmployeeID, assignmentPath))
				if floor, ok := calculation.MinimumGross(structure, asg.Toggles, asg.Overrides); ok {
					fmt.Fprintf(out, "minimum valid gross salary: %s\n", floor.StringFixed(2))
				} else {
					fmt.Fprintln(out, "no gross salary yields a valid breakdown for this assignment")
				}
			}
			if rosterPath != "" {
				roster, err := p.LoadRoster(rosterPath, structure)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "roster OK: %d assignments\n", len(roster.Assignments))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&structurePath, "structure", "s", "", "salary structure YAML file")
	cmd.Flags().StringVarP(&assignmentPath, "assignment", "a", "", "assignment YAML file")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster YAML file")
	cmd.Flags().BoolVar(&migrateLegacy, "migrate-legacy", false, "derive component roles from legacy names")
	_ = cmd.MarkFlagRequired("structure")
	return cmd
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
