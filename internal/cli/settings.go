package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the command line tool's own configuration. Domain inputs
// (structures, assignments) are separate YAML files.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Output OutputSettings `mapstructure:"output"`
	Roster RosterSettings `mapstructure:"roster"`
}

// LogSettings holds logging settings.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputSettings holds report rendering defaults.
type OutputSettings struct {
	Format   string `mapstructure:"format"`
	Currency string `mapstructure:"currency"`
	Monthly  bool   `mapstructure:"monthly"`
}

// RosterSettings holds roster computation settings.
type RosterSettings struct {
	Workers int `mapstructure:"workers"`
}

// LoadSettings reads settings from environment variables with the PAYSTRUCT_
// prefix and, when path is set, from a settings file (yaml, json or toml).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("PAYSTRUCT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "console")
	v.SetDefault("output.currency", "")
	v.SetDefault("output.monthly", false)
	v.SetDefault("roster.workers", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}
