// Package cli implements the paystruct command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/paystruct/salary-breakdown/internal/calculation"
	"github.com/paystruct/salary-breakdown/internal/config"
)

type app struct {
	settingsPath string
	logLevel     string
	logFormat    string

	settings *Settings
	logger   *slog.Logger
}

// NewRootCommand assembles the paystruct command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "paystruct",
		Short: "Salary structure breakdown calculator",
		Long: "paystruct resolves a yearly gross salary against a salary structure into\n" +
			"per-component earnings and deductions, total earnings, total deductions and net pay.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "config", "", "settings file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		a.newComputeCommand(),
		a.newValidateCommand(),
		a.newPayloadCommand(),
		a.newExampleCommand(),
		newFormatsCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		s.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		s.Log.Format = a.logFormat
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), s.Log.Level, s.Log.Format)
	if err != nil {
		return err
	}
	a.settings = s
	a.logger = logger
	return nil
}

func (a *app) calculator() *calculation.Calculator {
	c := calculation.NewCalculator()
	c.SetLogger(slogLogger{l: a.logger})
	return c
}

func parser(migrateLegacy bool) *config.InputParser {
	p := config.NewInputParser()
	p.MigrateLegacy = migrateLegacy
	return p
}
