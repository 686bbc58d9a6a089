package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/config"
)

func (a *app) newExampleCommand() *cobra.Command {
	var dir string
	var force bool
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example structure and assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			p := config.NewInputParser()
			files := []struct {
				name string
				v    any
			}{
				{"structure.yaml", p.CreateExampleStructure()},
				{"assignment.yaml", p.CreateExampleAssignment()},
			}
			for _, f := range files {
				path := filepath.Join(dir, f.name)
				if !force {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", path)
					} else if !errors.Is(err, fs.ErrNotExist) {
						return err
					}
				}
				if err := config.WriteYAML(path, f.v); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
