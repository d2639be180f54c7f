package config

import (
	"os"
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Merge the TOML config file when one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	return l.loadFromPath(resolveConfigPath(nil))
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.loadFromPath(resolveConfigPath(overrides))
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadFromPath(path string) (*Config, error) {
	if err := l.config.LoadFromFile(path); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// resolveConfigPath picks the config file location: the --config flag wins,
// then PUNCHCARD_CONFIG, then the default path under the home directory.
func resolveConfigPath(overrides *ConfigOverrides) string {
	if overrides != nil && overrides.ConfigPath != nil && *overrides.ConfigPath != "" {
		return *overrides.ConfigPath
	}
	if path := os.Getenv("PUNCHCARD_CONFIG"); path != "" {
		return path
	}
	return DefaultConfigPath()
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Config file override
	ConfigPath *string

	// Data overrides
	DataDir      *string
	DataFilename *string

	// Time overrides
	Timezone *string

	// Report overrides
	Rows  *string
	Exact *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
	NoColor *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Data overrides
	if overrides.DataDir != nil {
		config.Data.Dir = *overrides.DataDir
	}
	if overrides.DataFilename != nil {
		config.Data.Filename = *overrides.DataFilename
	}

	// Time overrides
	if overrides.Timezone != nil {
		config.Time.Timezone = *overrides.Timezone
	}

	// Report overrides
	if overrides.Rows != nil {
		config.Report.Rows = *overrides.Rows
	}
	if overrides.Exact != nil {
		config.Report.Exact = *overrides.Exact
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.NoColor != nil {
		config.Application.NoColor = *overrides.NoColor
	}
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return fallback
}
