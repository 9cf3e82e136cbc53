// Package config provides environment-backed defaults for the CLI.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunables that can be set through the environment.
// Command-line flags take precedence over everything here.
type Config struct {
	// TopN is the number of largest files to report.
	TopN int `mapstructure:"top"`
	// MinSize is the minimum file size in humanized form (e.g. "1MB").
	MinSize string `mapstructure:"min_size"`
	// Output is the report format: table or json.
	Output string `mapstructure:"output"`
	// Workers overrides walker parallelism (0 = automatic).
	Workers int `mapstructure:"workers"`
	// Color controls colored output: auto, always or never.
	Color string `mapstructure:"color"`
	// ProgressInterval is the cadence of progress updates.
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
}

// Load reads configuration from TOPSIZE_* environment variables on top
// of the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("top", 10)
	v.SetDefault("min_size", "0B")
	v.SetDefault("output", "table")
	v.SetDefault("workers", 0)
	v.SetDefault("color", "auto")
	v.SetDefault("progress_interval", 500*time.Millisecond)

	// Read environment variables
	v.SetEnvPrefix("TOPSIZE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
