package cli

import (
	"context"
)

// InCommand handles the in command
type InCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewInCommand creates a new in command handler
func NewInCommand(app *App) *InCommand {
	return &InCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the in command. Any arguments form an offset expression that
// shifts the entry away from the current time.
func (c *InCommand) Execute(ctx context.Context, args []string) error {
	offset, err := parseOffsetArgs(args)
	if err != nil {
		return c.errorHandler.Handle("clock in", err)
	}

	entry, err := c.app.api.ClockIn(ctx, offset)
	if err != nil {
		return c.errorHandler.Handle("clock in", err)
	}

	c.app.println(c.app.styles.clockedLine(entry, offset))
	return nil
}
