// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"quotedesk/logging"
)

// Config is the application configuration.
type Config struct {
	// DataDir is the PocketBase data directory
	DataDir string

	// Seed enables the sample catalog on first start
	Seed bool

	// CurrencySymbol prefixes formatted amounts in exports
	CurrencySymbol string

	// DefaultPageSize is used when a list request has no limit
	DefaultPageSize int

	Logging logging.Config
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		DataDir:         "./pb_data",
		Seed:            true,
		CurrencySymbol:  "R$",
		DefaultPageSize: 50,
		Logging:         logging.DefaultConfig(),
	}
}

// Load reads envFile (if it exists) into the process environment and builds
// the configuration from QUOTEDESK_* variables. Variables already present in
// the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return FromEnv(os.LookupEnv), nil
}

// FromEnv builds a configuration from a lookup function.
func FromEnv(lookup func(string) (string, bool)) *Config {
	cfg := Default()

	if v, ok := lookup("QUOTEDESK_DATA_DIR"); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup("QUOTEDESK_SEED"); ok && v != "" {
		cfg.Seed = cast.ToBool(strings.TrimSpace(v))
	}
	if v, ok := lookup("QUOTEDESK_CURRENCY_SYMBOL"); ok {
		cfg.CurrencySymbol = v
	}
	if v, ok := lookup("QUOTEDESK_DEFAULT_PAGE_SIZE"); ok {
		if n := cast.ToInt(strings.TrimSpace(v)); n > 0 {
			cfg.DefaultPageSize = n
		}
	}
	if v, ok := lookup("QUOTEDESK_LOG_LEVEL"); ok && v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup("QUOTEDESK_LOG_FORMAT"); ok && v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup("QUOTEDESK_LOG_OUTPUT"); ok && v != "" {
		cfg.Logging.Output = v
	}

	return cfg
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}
