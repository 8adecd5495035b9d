// =============================================================================
// Calculate Sales - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. The
// configuration only controls ambient behavior (logging, message language,
// spreadsheet export); the input and output file formats are fixed.
//
// CONFIGURATION FILE (calculate-sales.yaml):
//
//   log_level: warn        # debug | info | warn | error
//   log_mode: dev          # dev | prod
//   locale: en             # en | ja
//   xlsx_output: ""        # path of an extra XLSX summary, empty = off
//   xlsx_sheet: Summary
//
// If the default file is absent the defaults are used. A file named
// explicitly with --config must exist.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/calculate-sales/internal/summary"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "calculate-sales.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogLevel controls the verbosity of logging on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogMode selects the log encoding: "dev" (console) or "prod" (JSON).
	// Default: "dev"
	LogMode string `yaml:"log_mode"`

	// Locale selects the language of the diagnostic messages.
	// Valid values: "en", "ja"
	// Default: "en"
	Locale string `yaml:"locale"`

	// XLSXOutput is the path of an additional spreadsheet summary.
	// Relative paths are resolved against the input directory.
	// Default: "" (no spreadsheet)
	XLSXOutput string `yaml:"xlsx_output"`

	// XLSXSheet is the sheet name used in the spreadsheet summary.
	// Default: "Summary"
	XLSXSheet string `yaml:"xlsx_sheet"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration file at path.
//
// PARAMETERS:
//   - path: The configuration file path.
//   - required: If false, a missing file yields the defaults.
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string, required bool) (*Config, error) {
	if !required && !utils.FileExists(path) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "dev"
	}
	if cfg.Locale == "" {
		cfg.Locale = validation.LocaleEnglish
	}
	if cfg.XLSXSheet == "" {
		cfg.XLSXSheet = summary.DefaultSheet
	}
}

// Validate checks the option values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("log_mode must be dev or prod, got %q", c.LogMode)
	}
	if !validation.IsSupportedLocale(c.Locale) {
		return fmt.Errorf("locale must be en or ja, got %q", c.Locale)
	}
	return nil
}
