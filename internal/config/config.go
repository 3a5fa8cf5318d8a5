package config

import (
	"fmt"

	"stalepr/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every field can be set
// from the environment; a YAML file is optional.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Input describes where upstream steps leave their stale PR reports
	Input struct {
		// Glob matches report files; each must hold a bare JSON array of records
		Glob string `env:"STALE_PRS_INPUT_GLOB" env-default:"outputs/*.json" yaml:"glob"`
	} `yaml:"input"`

	// Digest contains ranking and rendering settings
	Digest struct {
		// DefaultLimit is used when no valid limit argument is given
		DefaultLimit int `env:"STALE_PRS_DEFAULT_LIMIT" env-default:"999" yaml:"defaultLimit"`
	} `yaml:"digest"`

	// GitHub holds the sink pointers supplied by the Actions runner
	GitHub struct {
		// StepSummary is the file the step summary is appended to
		StepSummary string `env:"GITHUB_STEP_SUMMARY" yaml:"stepSummary"`
		// Output is the file step outputs are appended to
		Output string `env:"GITHUB_OUTPUT" yaml:"output"`
	} `yaml:"github"`

	// Metrics configures the optional run report
	Metrics struct {
		// TextfilePath is where Prometheus text format metrics are written; empty disables them
		TextfilePath string `env:"STALE_PRS_METRICS_FILE" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load fills a Config from the environment. When configPath is not empty the
// YAML file is read first and environment variables override it.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// RequireOutput reports a missing GITHUB_OUTPUT. Every run writes COUNT, so
// the outputs sink is checked up front; the step summary is only resolved when
// there is something to summarize.
func (c *Config) RequireOutput() error {
	if c.GitHub.Output == "" {
		return serrors.With(serrors.ErrMissingSink, "GITHUB_OUTPUT is not set")
	}

	return nil
}
