package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"punchcard/internal/domain"
)

// Display layouts shared by the clock, status, and report commands.
const (
	prettyTimeLayout   = "03:04:05 PM"
	prettyDateLayout   = "Monday, 02 January 2006"
	slimDateTimeLayout = "03:04:05 PM 02 January 2006"
	bucketDateLayout   = "02 January 2006"
	reportDateLayout   = "2006-01-02"
)

// styleSet holds every lipgloss style the commands print with. Styles are
// built from one renderer so the color profile is decided in a single place.
type styleSet struct {
	renderer *lipgloss.Renderer

	gray      lipgloss.Style
	clockIn   lipgloss.Style
	clockOut  lipgloss.Style
	clockTime lipgloss.Style
	zone      lipgloss.Style
	clockDate lipgloss.Style
	offset    lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	asOf      lipgloss.Style
	relative  lipgloss.Style
	since     lipgloss.Style
	until     lipgloss.Style
	missing   lipgloss.Style
	emptyNote lipgloss.Style

	tableBorder lipgloss.Style
	tableHeader lipgloss.Style
	tableCells  []lipgloss.Style
}

// newStyleSet builds the style set for the given writer. With noColor the
// profile is forced to ASCII; otherwise lipgloss detects what the writer
// supports, so piped output drops color on its own.
func newStyleSet(w io.Writer, noColor bool) *styleSet {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	cell := r.NewStyle().Align(lipgloss.Center).Padding(0, 1)

	return &styleSet{
		renderer:  r,
		gray:      r.NewStyle().Foreground(lipgloss.Color("8")),
		clockIn:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		clockOut:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		clockTime: r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		zone:      r.NewStyle().Foreground(lipgloss.Color("4")),
		clockDate: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		offset:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		title:     r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		label:     r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		asOf:      r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		relative:  r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		since:     r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		until:     r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		missing:   r.NewStyle().Foreground(lipgloss.Color("1")),
		emptyNote: r.NewStyle().Foreground(lipgloss.Color("6")),

		tableBorder: r.NewStyle(),
		tableHeader: cell.Foreground(lipgloss.Color("5")),
		tableCells: []lipgloss.Style{
			cell.Foreground(lipgloss.Color("2")),
			cell.Foreground(lipgloss.Color("3")),
			cell.Foreground(lipgloss.Color("1")),
			cell.Foreground(lipgloss.Color("4")),
			cell.Foreground(lipgloss.Color("6")),
		},
	}
}

// entryKind renders a clock kind in its signature color
func (s *styleSet) entryKind(kind domain.EntryType) string {
	if kind == domain.ClockIn {
		return s.clockIn.Render(kind.String())
	}
	return s.clockOut.Render(kind.String())
}

// stampedDateTime renders "<time> (<zone>) on <date>" for a single instant
func (s *styleSet) stampedDateTime(t time.Time) string {
	zone, _ := t.Zone()
	var b strings.Builder
	b.WriteString(s.clockTime.Render(t.Format(prettyTimeLayout)))
	b.WriteString(" ")
	b.WriteString(s.gray.Render("("))
	b.WriteString(s.zone.Render(zone))
	b.WriteString(s.gray.Render(")"))
	b.WriteString(" ")
	b.WriteString(s.gray.Render("on"))
	b.WriteString(" ")
	b.WriteString(s.clockDate.Render(t.Format(prettyDateLayout)))
	return b.String()
}

// clockedLine renders the confirmation printed after a successful clock
// entry, e.g. "Clocked in @ 09:00:00 AM (PDT) on Monday, 01 May 2023".
func (s *styleSet) clockedLine(entry *domain.Entry, offset *domain.BiDuration) string {
	var b strings.Builder
	b.WriteString(s.gray.Render("Clocked"))
	b.WriteString(" ")
	b.WriteString(s.entryKind(entry.Kind))
	b.WriteString(" ")
	b.WriteString(s.gray.Render("@"))
	b.WriteString(" ")
	b.WriteString(s.stampedDateTime(entry.Timestamp))
	if offset != nil {
		b.WriteString(" ")
		b.WriteString(s.gray.Render("("))
		b.WriteString(s.offset.Render(offset.Format()))
		b.WriteString(s.gray.Render(")"))
	}
	return b.String()
}

// statusReport renders the four-line status block. The header names the
// query time and its distance from now whenever an offset re-anchored it.
func (s *styleSet) statusReport(status *domain.ClockStatus, now time.Time, hasOffset bool) string {
	var b strings.Builder

	b.WriteString(s.title.Render("Status Report"))
	if hasOffset {
		b.WriteString(" ")
		b.WriteString(s.gray.Render("@"))
		b.WriteString(" ")
		b.WriteString(s.asOf.Render(status.AsOf.Format(slimDateTimeLayout)))
		b.WriteString(" ")
		b.WriteString(s.gray.Render("("))
		relative := domain.NewBiDuration(status.AsOf.Sub(now))
		b.WriteString(s.relative.Render(relative.FormatRelative()))
		b.WriteString(s.gray.Render(")"))
	}
	b.WriteString(":\n")

	b.WriteString("   ")
	b.WriteString(s.label.Render("Status:"))
	b.WriteString(" ")
	b.WriteString(s.statusLine(status))
	b.WriteString("\n")

	b.WriteString("    ")
	b.WriteString(s.label.Render("Since:"))
	b.WriteString(" ")
	b.WriteString(s.boundary(status.Since, s.since))
	b.WriteString("\n")

	b.WriteString("    ")
	b.WriteString(s.label.Render("Until:"))
	b.WriteString(" ")
	b.WriteString(s.boundary(status.Until, s.until))

	return b.String()
}

// statusLine renders the state itself. An absent or empty log presents as
// clocked out, with a note naming which of the two it was.
func (s *styleSet) statusLine(status *domain.ClockStatus) string {
	clocked := s.gray.Render("Clocked")
	switch status.State {
	case domain.StatusClocked:
		return clocked + " " + s.entryKind(status.Active)
	case domain.StatusNoLogFile:
		return clocked + " " + s.entryKind(domain.ClockOut) + " " +
			s.gray.Render("(") + s.emptyNote.Render("no log file") + s.gray.Render(")")
	default:
		return clocked + " " + s.entryKind(domain.ClockOut) + " " +
			s.gray.Render("(") + s.emptyNote.Render("no entries") + s.gray.Render(")")
	}
}

// boundary renders an optional boundary timestamp, or N/A when absent
func (s *styleSet) boundary(t *time.Time, style lipgloss.Style) string {
	if t == nil {
		return s.missing.Render("N/A")
	}
	return style.Render(t.Format(slimDateTimeLayout))
}

// reportHeader renders the line printed above a report table
func (s *styleSet) reportHeader(now time.Time) string {
	var b strings.Builder
	b.WriteString(s.gray.Render("Report generated at"))
	b.WriteString(" ")
	b.WriteString(s.stampedDateTime(now))
	b.WriteString(s.gray.Render(":"))
	return b.String()
}
