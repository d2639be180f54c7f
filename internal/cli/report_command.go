package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"punchcard/internal/domain"
	"punchcard/internal/errors"
	"punchcard/internal/validation"
)

// stdoutPath sends the CSV export to stdout instead of a file.
const stdoutPath = "-"

// ReportOptions carries the report command's flag values. RowsSet and
// ExactSet record whether the user passed the flag, so unset flags fall back
// to the configured defaults.
type ReportOptions struct {
	Period    string
	Month     string
	SpillOver bool
	Rows      string
	RowsSet   bool
	Exact     bool
	ExactSet  bool
	Output    string
	Copy      bool
	Preview   bool
	JustTable bool
}

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	validator    *validation.ReportValidator
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		validator:    validation.NewReportValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the report command. The copyable forms replace the table;
// otherwise the header and table print unless suppressed, and the CSV
// export runs last. Sending CSV to stdout silences everything else so the
// output stays pipeable.
func (c *ReportCommand) Execute(ctx context.Context, opts ReportOptions) error {
	rows, exact, err := c.displaySettings(opts)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}

	if opts.Output != "" {
		if err := c.validator.ValidateOutputPath(opts.Output); err != nil {
			return c.errorHandler.Handle("generate report", err)
		}
	}

	report, err := c.buildReport(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}

	if opts.Copy || opts.Preview {
		return c.copyableReport(report, rows, exact, opts)
	}

	csvToStdout := opts.Output == stdoutPath

	if !opts.JustTable && !csvToStdout {
		c.app.println(c.app.styles.reportHeader(c.app.api.Now()))
	}
	if !csvToStdout {
		c.app.println(c.app.styles.renderReportTable(report, rows, exact))
	}

	if opts.Output != "" {
		if err := c.exportCSV(report, opts.Output, exact); err != nil {
			return c.errorHandler.Handle("export report", err)
		}
	}

	return nil
}

// displaySettings resolves the row limit and duration style, falling back
// to the configured defaults for flags the user left unset.
func (c *ReportCommand) displaySettings(opts ReportOptions) (domain.Quantity, bool, error) {
	rowsInput := opts.Rows
	if !opts.RowsSet && c.app.config != nil {
		rowsInput = c.app.config.Report.Rows
	}
	rows, err := domain.ParseQuantity(rowsInput)
	if err != nil {
		return domain.Quantity{}, false, err
	}

	exact := opts.Exact
	if !opts.ExactSet && c.app.config != nil {
		exact = c.app.config.Report.Exact
	}

	return rows, exact, nil
}

// buildReport runs the requested aggregation
func (c *ReportCommand) buildReport(ctx context.Context, opts ReportOptions) (*domain.Report, error) {
	period, err := parseReportPeriod(opts.Period)
	if err != nil {
		return nil, err
	}

	if period == domain.ReportDaily {
		return c.app.api.DailyReport(ctx)
	}

	monthInput := opts.Month
	if monthInput == "" {
		monthInput = "current"
	}
	month, err := domain.ParseMonth(monthInput, c.app.api.Now())
	if err != nil {
		return nil, err
	}
	return c.app.api.WeeklyReport(ctx, month, opts.SpillOver)
}

// parseReportPeriod reads the optional positional argument selecting the
// bucketing period. Weekly is the default.
func parseReportPeriod(arg string) (domain.ReportPeriod, error) {
	switch arg {
	case "", "weekly":
		return domain.ReportWeekly, nil
	case "daily":
		return domain.ReportDaily, nil
	default:
		return 0, errors.NewValidationError(fmt.Sprintf("Unknown report type: %s. Expected 'daily' or 'weekly'", arg), nil)
	}
}

// copyableReport renders the report as a markdown document for sharing
// instead of printing the table.
func (c *ReportCommand) copyableReport(report *domain.Report, rows domain.Quantity, exact bool, opts ReportOptions) error {
	markdown := composeMarkdownReport(report, rows, exact, c.app.api.Now())

	if opts.Copy {
		if err := clipboard.WriteAll(markdown); err != nil {
			return c.errorHandler.Handle("copy report", err)
		}
		c.app.println("Report copied to clipboard.")
	}
	if opts.Preview {
		c.app.println(renderMarkdownPreview(markdown))
	}

	return nil
}

// exportCSV writes every bucket as CSV, ignoring the row limit so the
// export always holds the complete report.
func (c *ReportCommand) exportCSV(report *domain.Report, path string, exact bool) error {
	out, closeOutput, err := c.openOutput(path)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(out)
	rows := make([][]string, 0, len(report.Buckets)+1)
	rows = append(rows, reportColumns(report.Period))
	for _, bucket := range report.Buckets {
		rows = append(rows, bucketRow(bucket, report.Period, exact))
	}

	if err := writer.WriteAll(rows); err != nil {
		closeOutput()
		return errors.NewIOError("write report", path, err)
	}
	if err := closeOutput(); err != nil {
		return errors.NewIOError("close", path, err)
	}

	return nil
}

// openOutput opens the export destination. "-" means the command's own
// output stream, which must stay open.
func (c *ReportCommand) openOutput(path string) (io.Writer, func() error, error) {
	if path == stdoutPath {
		return c.app.out, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.NewIOError("create", path, err)
	}
	return file, file.Close, nil
}
