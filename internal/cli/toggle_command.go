package cli

import (
	"context"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the toggle command, appending the opposite of whatever kind
// is currently in force. An empty log toggles to a clock-in.
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	offset, err := parseOffsetArgs(args)
	if err != nil {
		return c.errorHandler.Handle("toggle clock", err)
	}

	entry, err := c.app.api.Toggle(ctx, offset)
	if err != nil {
		return c.errorHandler.Handle("toggle clock", err)
	}

	c.app.println(c.app.styles.clockedLine(entry, offset))
	return nil
}
