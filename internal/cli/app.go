// Package cli implements the punchcard command surface on cobra. Commands
// talk to the core through the api facade and print through an injectable
// writer so tests can capture output.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"punchcard/internal/api"
	"punchcard/internal/config"
	"punchcard/internal/domain"
)

// App carries the shared dependencies of every command handler
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
	styles *styleSet
}

// NewApp creates a new CLI application instance writing to stdout
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return NewAppWithOutput(apiInstance, cfg, os.Stdout)
}

// NewAppWithOutput creates a CLI application with an injected output writer.
// Tests use it to capture what commands print.
func NewAppWithOutput(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	noColor := cfg != nil && cfg.Application.NoColor
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    out,
		styles: newStyleSet(out, noColor),
	}
}

// printf writes formatted output to the application writer
func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// println writes a line to the application writer
func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// parseOffsetArgs joins bare command arguments into one offset expression
// and parses it. No arguments mean no offset.
func parseOffsetArgs(args []string) (*domain.BiDuration, error) {
	expr := strings.TrimSpace(strings.Join(args, " "))
	if expr == "" {
		return nil, nil
	}
	offset, err := domain.ParseBiDuration(expr)
	if err != nil {
		return nil, err
	}
	return &offset, nil
}
