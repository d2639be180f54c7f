package cli

import (
	"context"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command. Any arguments form an offset expression
// that moves the query time, so "status 2h ago" answers for the past and
// "status in 1h" for the future.
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	offset, err := parseOffsetArgs(args)
	if err != nil {
		return c.errorHandler.Handle("resolve status", err)
	}

	status, err := c.app.api.Status(ctx, offset)
	if err != nil {
		return c.errorHandler.Handle("resolve status", err)
	}

	c.app.println(c.app.styles.statusReport(status, c.app.api.Now(), offset != nil))
	return nil
}
