package cli

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"punchcard/internal/domain"
)

// reportColumns returns the column headers for the given bucketing period.
func reportColumns(period domain.ReportPeriod) []string {
	if period == domain.ReportWeekly {
		return []string{"Week Of", "Total Hours", "Week End", "Number of Shifts", "Avg. Shift Duration"}
	}
	return []string{"Date", "Total Hours", "Number of Shifts", "Avg. Shift Duration"}
}

// bucketRow renders one report bucket as table cells, in the same column
// order as reportColumns.
func bucketRow(bucket domain.ReportBucket, period domain.ReportPeriod, exact bool) []string {
	total := formatTableDuration(bucket.Total, exact)
	average := formatTableDuration(bucket.Average, exact)
	shifts := strconv.Itoa(bucket.Shifts)

	if period == domain.ReportWeekly {
		return []string{
			bucket.PeriodStart.Format(bucketDateLayout),
			total,
			bucket.PeriodEnd.Format(bucketDateLayout),
			shifts,
			average,
		}
	}
	return []string{
		bucket.PeriodStart.Format(bucketDateLayout),
		total,
		shifts,
		average,
	}
}

// formatTableDuration renders a duration for a report cell. The default form
// rounds to hours and minutes; exact keeps seconds.
func formatTableDuration(d time.Duration, exact bool) string {
	bd := domain.NewBiDuration(d)
	if exact {
		return bd.FormatExact()
	}
	return bd.FormatHours()
}

// limitBuckets keeps the most recent rows of a report, since the newest
// periods are the ones worth scanning first.
func limitBuckets(buckets []domain.ReportBucket, rows domain.Quantity) []domain.ReportBucket {
	keep := rows.Limit(len(buckets))
	return buckets[len(buckets)-keep:]
}

// renderReportTable renders the report as a bordered table, keeping only the
// most recent rows.
func (s *styleSet) renderReportTable(report *domain.Report, rows domain.Quantity, exact bool) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.tableBorder).
		BorderRow(true).
		Headers(reportColumns(report.Period)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.tableHeader
			}
			return s.tableCells[col%len(s.tableCells)]
		})

	for _, bucket := range limitBuckets(report.Buckets, rows) {
		t = t.Row(bucketRow(bucket, report.Period, exact)...)
	}

	return t.Render()
}
