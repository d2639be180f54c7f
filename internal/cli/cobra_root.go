package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punchcard/internal/api"
	"punchcard/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	return NewRootCommandWithApp(NewApp(apiInstance, cfg))
}

// NewRootCommandWithApp creates the root command over a prebuilt App. Tests
// use it to capture command output.
func NewRootCommandWithApp(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "punchcard",
		Short: "A command-line punch clock for tracking work hours",
		Long: `Punchcard is a command-line punch clock. It keeps an append-only log of
clock-in and clock-out events in a plain CSV file and turns the log into
weekly or daily hour reports.

FEATURES:
  • Clock in, clock out, or toggle, with optional time offsets
  • Ask for the clock state at any point in time, past or future
  • Weekly and daily reports with month filtering and spill-over
  • Export reports to CSV files, markdown, or the system clipboard
  • Seed a fresh log with generated test data
  • Fully configurable via a TOML file, environment variables, and flags

EXAMPLES:
  punchcard in                             # Clock in right now
  punchcard out 5m ago                     # Clock out five minutes in the past
  punchcard toggle in 1h                   # Flip the clock state an hour from now
  punchcard status                         # Show the current clock state
  punchcard status 2h ago                  # Show the clock state two hours ago
  punchcard report                         # Weekly report for the current month
  punchcard report daily --exact           # Daily report with exact durations
  punchcard report -m previous -o out.csv  # Export last month's report to CSV
  punchcard report --copy                  # Copy a markdown report to the clipboard
  punchcard generate --count 100           # Seed an empty log with test data

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Storage Configuration:
    PUNCHCARD_CONFIG                       Config file path (default: ~/.punchcard/config.toml)
    PUNCHCARD_DATA_DIR                     Data directory (default: ~/.punchcard)
    PUNCHCARD_DATA_FILENAME                Event log filename (default: hours.csv)

  Time Configuration:
    PUNCHCARD_TIMEZONE                     IANA timezone name (default: Local)

  Report Configuration:
    PUNCHCARD_REPORT_ROWS                  Table rows to display, or 'all' (default: 10)
    PUNCHCARD_REPORT_EXACT                 Print exact durations (default: false)

  Application Configuration:
    PUNCHCARD_TIMEOUT                      Command timeout (default: 1m)
    PUNCHCARD_VERBOSE                      Enable verbose logging (default: false)
    PUNCHCARD_NO_COLOR                     Disable colored output (default: false)

OFFSET EXPRESSIONS:
  Clock and status commands accept an offset from the current time:
    5m, 1h 30m, 2h ago, in 45m             # "ago" points backward, "in" forward

GETTING HELP:
  punchcard [command] --help               # Get help for any specific command
  punchcard completion bash                # Generate bash completion script
  punchcard completion zsh                 # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("config", "", "Config file path (overrides PUNCHCARD_CONFIG)")
	flags.String("data-dir", "", "Data directory (overrides PUNCHCARD_DATA_DIR)")
	flags.String("data-filename", "", "Event log filename (overrides PUNCHCARD_DATA_FILENAME)")

	// Time configuration
	flags.String("timezone", "", "IANA timezone name (overrides PUNCHCARD_TIMEZONE)")

	// Application configuration
	flags.Duration("timeout", 0, "Command timeout (overrides PUNCHCARD_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides PUNCHCARD_VERBOSE)")
	flags.Bool("no-color", false, "Disable colored output (overrides PUNCHCARD_NO_COLOR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// In command
	inCmd := &cobra.Command{
		Use:   "in [offset...]",
		Short: "Clock in",
		Long: `Append a clock-in entry to the log.

An optional offset expression shifts the entry away from the current time,
so past or future entries can be recorded without editing the log by hand.

Examples:
  punchcard in              # Clock in right now
  punchcard in 5m ago       # Clock in five minutes in the past
  punchcard in in 10m       # Clock in ten minutes in the future`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewInCommand(r.app).Execute(ctx, args)
		},
	}

	// Out command
	outCmd := &cobra.Command{
		Use:   "out [offset...]",
		Short: "Clock out",
		Long: `Append a clock-out entry to the log.

An optional offset expression shifts the entry away from the current time.

Examples:
  punchcard out             # Clock out right now
  punchcard out 1h 30m ago  # Clock out an hour and a half in the past`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewOutCommand(r.app).Execute(ctx, args)
		},
	}

	// Toggle command
	toggleCmd := &cobra.Command{
		Use:   "toggle [offset...]",
		Short: "Toggle the clock state",
		Long: `Append the opposite of the most recent entry: a clock-out while clocked
in, a clock-in otherwise. An empty log toggles to a clock-in.

Examples:
  punchcard toggle          # Flip the clock state right now
  punchcard toggle 5m ago   # Flip the clock state five minutes in the past`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewToggleCommand(r.app).Execute(ctx, args)
		},
	}

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status [offset...]",
		Short: "Show the clock state",
		Long: `Show whether the clock is in or out, since when, and until when. An
optional offset expression moves the query time, so the log can answer for
any point in the past or the future.

Examples:
  punchcard status          # Clock state right now
  punchcard status 2h ago   # Clock state two hours in the past
  punchcard status in 1h    # Clock state an hour from now`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStatusCommand(r.app).Execute(ctx, args)
		},
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report [daily|weekly]",
		Short: "Aggregate the log into an hours report",
		Long: `Aggregate completed shifts into an hours report. Weekly reports bucket
shifts by Monday-started week within a month; daily reports bucket the
current week's shifts by day. A shift belongs to the bucket its clock-out
falls in.

Examples:
  punchcard report                  # Weekly report for the current month
  punchcard report -m previous      # Weekly report for last month
  punchcard report -m all -n all    # Every week on record
  punchcard report daily            # Daily report for the current week
  punchcard report -o hours.csv     # Export the full report to a CSV file
  punchcard report -o -             # Write CSV to stdout for piping
  punchcard report --copy           # Copy a markdown report to the clipboard
  punchcard report --preview        # Render the markdown report in the terminal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := ReportOptions{}
			if len(args) > 0 {
				opts.Period = args[0]
			}

			flags := cmd.Flags()
			opts.Month, _ = flags.GetString("month")
			opts.SpillOver, _ = flags.GetBool("spill-over")
			opts.Rows, _ = flags.GetString("rows")
			opts.RowsSet = flags.Changed("rows")
			opts.Exact, _ = flags.GetBool("exact")
			opts.ExactSet = flags.Changed("exact")
			opts.Output, _ = flags.GetString("output")
			opts.Copy, _ = flags.GetBool("copy")
			opts.Preview, _ = flags.GetBool("preview")
			opts.JustTable, _ = flags.GetBool("just-table")

			return NewReportCommand(r.app).Execute(ctx, opts)
		},
	}
	reportCmd.Flags().StringP("month", "m", "current", "Month to report on: a name, number, 'current', 'previous', 'next', or 'all'")
	reportCmd.Flags().BoolP("spill-over", "s", false, "Include weeks that cross the month boundary")
	reportCmd.Flags().StringP("rows", "n", "10", "Table rows to display, or 'all'")
	reportCmd.Flags().Bool("exact", false, "Print exact durations instead of rounded")
	reportCmd.Flags().StringP("output", "o", "", "Save the report as CSV to a file, or '-' for stdout (ignores --rows)")
	reportCmd.Flags().BoolP("copy", "c", false, "Copy the report as markdown to the clipboard")
	reportCmd.Flags().BoolP("preview", "p", false, "Render the markdown report in the terminal")
	reportCmd.Flags().BoolP("just-table", "j", false, "Only print the table and nothing else")

	// Now command
	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Long:  "Print the current time in the configured timezone, at the same precision entries carry in the log.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			humanReadable, _ := cmd.Flags().GetBool("human-readable")
			return NewNowCommand(r.app).Execute(ctx, humanReadable)
		},
	}
	nowCmd.Flags().BoolP("human-readable", "H", false, "Print a plain date and time instead of the log format")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Seed the log with test data",
		Long: `Fill an empty log with alternating clock-in and clock-out entries spaced
a few hours apart. Refuses to touch a log that already has entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			count, _ := cmd.Flags().GetInt("count")
			return NewGenerateCommand(r.app).Execute(ctx, count)
		},
	}
	generateCmd.Flags().IntP("count", "c", 10000, "Number of entries to generate")

	// Add all subcommands to root
	r.cmd.AddCommand(
		inCmd,
		outCmd,
		toggleCmd,
		statusCmd,
		reportCmd,
		nowCmd,
		generateCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with values from command-line
// flags. Storage and timezone flags are consumed before construction in main;
// re-applying them here keeps direct RootCommand users consistent.
func (r *RootCommand) getConfigFromFlags() error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	cfg := r.app.config

	// Storage configuration
	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if dataFilename, _ := flags.GetString("data-filename"); dataFilename != "" {
		cfg.Data.Filename = dataFilename
	}

	// Time configuration
	if timezone, _ := flags.GetString("timezone"); timezone != "" {
		cfg.Time.Timezone = timezone
	}

	// Application configuration
	if timeout, _ := flags.GetDuration("timeout"); timeout > 0 {
		cfg.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Application.Verbose = verbose
	}
	if noColor, _ := flags.GetBool("no-color"); noColor && !cfg.Application.NoColor {
		cfg.Application.NoColor = true
		r.app.styles = newStyleSet(r.app.out, true)
	}

	return nil
}
