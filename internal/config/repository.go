package config

import (
	"punchcard/internal/repository/csvlog"
)

// CreateRepository creates the event log repository using the configuration
// system. The file itself is created lazily on the first append.
func CreateRepository(config *Config) csvlog.Repository {
	return csvlog.New(config.GetLogPath())
}
