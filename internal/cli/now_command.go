package cli

import (
	"context"
)

// Timestamp layouts for the now command. The default form matches the
// precision of log entries; the human-readable form drops the offset.
const (
	nowLayout      = "2006-01-02T15:04:05.000000000-07:00"
	nowHumanLayout = "2006-01-02 15:04:05"
)

// NowCommand handles the now command
type NowCommand struct {
	app *App
}

// NewNowCommand creates a new now command handler
func NewNowCommand(app *App) *NowCommand {
	return &NowCommand{app: app}
}

// Execute runs the now command, printing the current time in the configured
// timezone.
func (c *NowCommand) Execute(ctx context.Context, humanReadable bool) error {
	now := c.app.api.Now()
	if humanReadable {
		c.app.println(now.Format(nowHumanLayout))
		return nil
	}
	c.app.println(now.Format(nowLayout))
	return nil
}
