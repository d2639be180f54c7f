package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"punchcard/internal/domain"
)

// Config holds all configuration options for the punchcard application
type Config struct {
	Data        DataConfig        `toml:"data"`
	Time        TimeConfig        `toml:"time"`
	Report      ReportConfig      `toml:"report"`
	Application ApplicationConfig `toml:"application"`
}

// DataConfig holds event log storage configuration
type DataConfig struct {
	Dir      string `toml:"dir" env:"PUNCHCARD_DATA_DIR"`
	Filename string `toml:"filename" env:"PUNCHCARD_DATA_FILENAME"`
}

// TimeConfig holds timezone configuration
type TimeConfig struct {
	Timezone string `toml:"timezone" env:"PUNCHCARD_TIMEZONE"`
}

// ReportConfig holds report rendering defaults
type ReportConfig struct {
	Rows  string `toml:"rows" env:"PUNCHCARD_REPORT_ROWS"`
	Exact bool   `toml:"exact" env:"PUNCHCARD_REPORT_EXACT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"PUNCHCARD_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"PUNCHCARD_VERBOSE"`
	NoColor bool          `toml:"no_color" env:"PUNCHCARD_NO_COLOR"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".punchcard")

	return &Config{
		Data: DataConfig{
			Dir:      defaultDataDir,
			Filename: "hours.csv",
		},
		Time: TimeConfig{
			Timezone: "Local",
		},
		Report: ReportConfig{
			Rows:  "10",
			Exact: false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
			NoColor: false,
		},
	}
}

// DefaultConfigPath returns the default location of the config file
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".punchcard", "config.toml")
}

// GetLogPath returns the full path to the event log file
func (c *Config) GetLogPath() string {
	return filepath.Join(c.Data.Dir, c.Data.Filename)
}

// GetLocation resolves the configured timezone
func (c *Config) GetLocation() (*time.Location, error) {
	return time.LoadLocation(c.Time.Timezone)
}

// LoadFromFile merges settings from a TOML file over the current values.
// A missing or empty file leaves the configuration untouched.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(content) == 0 {
		return nil
	}

	if err := toml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Data configuration
	if dir := os.Getenv("PUNCHCARD_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
	if filename := os.Getenv("PUNCHCARD_DATA_FILENAME"); filename != "" {
		c.Data.Filename = filename
	}

	// Time configuration
	if timezone := os.Getenv("PUNCHCARD_TIMEZONE"); timezone != "" {
		c.Time.Timezone = timezone
	}

	// Report configuration
	if rows := os.Getenv("PUNCHCARD_REPORT_ROWS"); rows != "" {
		c.Report.Rows = rows
	}
	if exact := os.Getenv("PUNCHCARD_REPORT_EXACT"); exact != "" {
		c.Report.Exact = ParseBoolWithFallback(exact, c.Report.Exact)
	}

	// Application configuration
	if timeout := os.Getenv("PUNCHCARD_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("PUNCHCARD_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if noColor := os.Getenv("PUNCHCARD_NO_COLOR"); noColor != "" {
		c.Application.NoColor = ParseBoolWithFallback(noColor, c.Application.NoColor)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate data configuration
	if c.Data.Dir == "" {
		return &ConfigError{Field: "data.dir", Message: "data directory cannot be empty"}
	}
	if c.Data.Filename == "" {
		return &ConfigError{Field: "data.filename", Message: "log filename cannot be empty"}
	}

	// Validate time configuration
	if c.Time.Timezone == "" {
		return &ConfigError{Field: "time.timezone", Message: "timezone cannot be empty"}
	}
	if _, err := time.LoadLocation(c.Time.Timezone); err != nil {
		return &ConfigError{Field: "time.timezone", Message: fmt.Sprintf("unknown timezone %q", c.Time.Timezone)}
	}

	// Validate report configuration
	if _, err := domain.ParseQuantity(c.Report.Rows); err != nil {
		return &ConfigError{Field: "report.rows", Message: `rows must be a positive integer or "all"`}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
