package cli

import (
	"context"
)

// OutCommand handles the out command
type OutCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewOutCommand creates a new out command handler
func NewOutCommand(app *App) *OutCommand {
	return &OutCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the out command. Any arguments form an offset expression that
// shifts the entry away from the current time.
func (c *OutCommand) Execute(ctx context.Context, args []string) error {
	offset, err := parseOffsetArgs(args)
	if err != nil {
		return c.errorHandler.Handle("clock out", err)
	}

	entry, err := c.app.api.ClockOut(ctx, offset)
	if err != nil {
		return c.errorHandler.Handle("clock out", err)
	}

	c.app.println(c.app.styles.clockedLine(entry, offset))
	return nil
}
