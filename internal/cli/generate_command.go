package cli

import (
	"context"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewGenerateCommand creates a new generate command handler
func NewGenerateCommand(app *App) *GenerateCommand {
	return &GenerateCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the generate command, seeding the log with alternating test
// entries. It refuses to touch a log that already has entries.
func (c *GenerateCommand) Execute(ctx context.Context, count int) error {
	written, err := c.app.api.Generate(ctx, count)
	if err != nil {
		return c.errorHandler.Handle("generate test data", err)
	}

	c.app.printf("Generated %d test entries\n", written)
	return nil
}
