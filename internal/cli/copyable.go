package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"punchcard/internal/domain"
)

// composeMarkdownReport renders the report as a standalone markdown document
// suitable for pasting into an invoice or a chat message. The table honors
// the row limit; the total always covers every bucket.
func composeMarkdownReport(report *domain.Report, rows domain.Quantity, exact bool, date time.Time) string {
	var b strings.Builder

	b.WriteString("# Hours Report (")
	b.WriteString(date.Format(reportDateLayout))
	b.WriteString(")\n\n")

	columns := reportColumns(report.Period)
	b.WriteString("| ")
	b.WriteString(strings.Join(columns, " | "))
	b.WriteString(" |\n|")
	for range columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, bucket := range limitBuckets(report.Buckets, rows) {
		b.WriteString("| ")
		b.WriteString(strings.Join(bucketRow(bucket, report.Period, exact), " | "))
		b.WriteString(" |\n")
	}

	b.WriteString("\n**Total Hours:** ")
	b.WriteString(domain.NewBiDuration(report.Total()).FormatHours())
	b.WriteString("\n")

	return b.String()
}

// renderMarkdownPreview renders the markdown report for the terminal. On any
// rendering failure the raw markdown is returned so the report is never lost.
func renderMarkdownPreview(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return strings.TrimRight(rendered, "\n")
}
