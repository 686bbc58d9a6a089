package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/submission"
)

func (a *app) newPayloadCommand() *cobra.Command {
	var structurePath, assignmentPath string
	var migrateLegacy bool
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the submission payload for an assignment",
		Long:  "payload prints the JSON document saved when a structure is assigned.\nIt fails when the breakdown is invalid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := parser(migrateLegacy)
			structure, err := p.LoadStructure(structurePath)
			if err != nil {
				return err
			}
			asg, err := p.LoadAssignment(assignmentPath, structure)
			if err != nil {
				return err
			}
			b, err := a.calculator().Calculate(structure, asg)
			if err != nil {
				return err
			}
			payload, err := submission.Build(structure, asg, b)
			if err != nil {
				return err
			}
			data, err := submission.Encode(payload)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&structurePath, "structure", "s", "", "salary structure YAML file")
	cmd.Flags().StringVarP(&assignmentPath, "assignment", "a", "", "assignment YAML file")
	cmd.Flags().BoolVar(&migrateLegacy, "migrate-legacy", false, "derive component roles from legacy names")
	_ = cmd.MarkFlagRequired("structure")
	_ = cmd.MarkFlagRequired("assignment")
	return cmd
}
