// Package logging configures the process-wide logger behind the --verbose
// debug output.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DebugEnabled reports whether debug output was forced on through the
// PUNCHCARD_DEBUG environment variable, independent of --verbose.
func DebugEnabled() bool {
	return os.Getenv("PUNCHCARD_DEBUG") != ""
}

// Setup builds the application logger and installs it as the process-wide
// default, so any package can emit through log.Debug and friends. Warnings
// only unless verbose (or PUNCHCARD_DEBUG) asks for more.
func Setup(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose || DebugEnabled() {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "punchcard",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.TextFormatter,
	})
	log.SetDefault(logger)

	return logger
}
