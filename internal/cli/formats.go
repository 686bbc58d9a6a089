package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/output"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases := map[string][]string{}
			for _, alias := range output.AvailableFormatAliases() {
				target := output.AliasTarget(alias)
				aliases[target] = append(aliases[target], alias)
			}
			out := cmd.OutOrStdout()
			for _, name := range output.AvailableFormatterNames() {
				if a := aliases[name]; len(a) > 0 {
					fmt.Fprintf(out, "%-8s (aliases: %s)\n", name, strings.Join(a, ", "))
					continue
				}
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
