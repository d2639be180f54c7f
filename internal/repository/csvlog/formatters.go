package csvlog

import (
	"time"
)

// LogTimeLayout is the timestamp layout written to the event log: nanosecond
// precision with a colon-less zone offset.
const LogTimeLayout = "2006-01-02T15:04:05.000000000-0700"

// logTimeParseLayout accepts any fractional second width on read.
const logTimeParseLayout = "2006-01-02T15:04:05-0700"

// FormatTimeForLog formats a time.Time value for consistent log storage
func FormatTimeForLog(t time.Time) string {
	return t.Format(LogTimeLayout)
}

// ParseTimeFromLog parses an event log timestamp. Zone offsets with a colon
// are also accepted since log files may be edited by hand.
func ParseTimeFromLog(s string) (time.Time, error) {
	t, err := time.Parse(logTimeParseLayout, s)
	if err == nil {
		return t, nil
	}
	if t, rfcErr := time.Parse(time.RFC3339Nano, s); rfcErr == nil {
		return t, nil
	}
	return time.Time{}, err
}
