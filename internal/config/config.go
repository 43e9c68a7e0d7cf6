// Package config loads the mdmigrate.yaml tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"

	"github.com/mdmigrate/mdmigrate/internal/ledger"
)

// DefaultFile is the configuration file name looked up in the
// migration directory.
const DefaultFile = "mdmigrate.yaml"

// Config holds the run options for a migration.
type Config struct {
	// MetadataFile is the account metadata file name, relative to
	// the migration directory.
	MetadataFile string `yaml:"metadata_file"`
	// Extension of the per-account transaction export files.
	Extension string `yaml:"extension"`
	// DateFormat of export file dates: "ddmmyy" or "mmddyy".
	DateFormat string `yaml:"date_format"`
	// DecimalSeparator used in export file amounts.
	DecimalSeparator string `yaml:"decimal_separator"`
	// BaseCurrency is the book's base currency code.
	BaseCurrency string `yaml:"base_currency"`
	// KeepRepaired leaves repaired export files in place after
	// import for inspection.
	KeepRepaired bool `yaml:"keep_repaired"`
	// LogLevel controls run logging: debug, info, warn, error or off.
	LogLevel string `yaml:"log_level"`
}

// QIFDateFormat returns the configured date format as the importer
// option value.
func (c *Config) QIFDateFormat() ledger.DateFormat {
	if c.DateFormat == string(ledger.DateFormatMMDDYY) {
		return ledger.DateFormatMMDDYY
	}
	return ledger.DateFormatDDMMYY
}

// Separator returns the configured decimal separator as a rune,
// defaulting to '.'.
func (c *Config) Separator() rune {
	for _, r := range c.DecimalSeparator {
		return r
	}
	return '.'
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration for a plain Money-to-ledger
// migration.
func Default() *Config {
	return &Config{
		MetadataFile:     "accounts.json",
		Extension:        ".qif",
		DateFormat:       string(ledger.DateFormatDDMMYY),
		DecimalSeparator: ".",
		BaseCurrency:     "USD",
		LogLevel:         "info",
	}
}
