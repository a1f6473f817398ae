package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/topology/internal/loader"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds the settings shared by every subcommand.
type Config struct {
	InputFormat string // Overrides extension detection when set
	Output      string // text, json, yaml or hcl; empty picks the command default
	Query       string // JSONPath applied to extended output

	LogLevel  string
	LogFormat string

	Strict  bool
	Workers int
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q (expected one of %v)", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q (expected one of %v)", cfg.LogFormat, logFormats)
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers cannot be negative")
	}
	if cfg.InputFormat != "" {
		if _, err := loader.ParseFormat(cfg.InputFormat); err != nil {
			return nil, fmt.Errorf("--format: %w", err)
		}
	}
	if cfg.Output != "" && cfg.Output != "text" {
		if _, err := loader.ParseFormat(cfg.Output); err != nil {
			return nil, fmt.Errorf("--output: %w", err)
		}
	}
	return &cfg, nil
}

// outputFormat resolves --output for commands that emit structured data.
// "text" and empty select def.
func (c *Config) outputFormat(def loader.Format) loader.Format {
	if c.Output == "" || c.Output == "text" {
		return def
	}
	f, _ := loader.ParseFormat(c.Output)
	return f
}

// structured reports whether the user asked for machine-readable output.
func (c *Config) structured() bool {
	return c.Output != "" && c.Output != "text"
}
