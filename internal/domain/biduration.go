package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"punchcard/internal/errors"
)

// BiDuration is a duration with an explicit direction in time. Negative
// values point into the past, non-negative values into the future.
type BiDuration time.Duration

// NewBiDuration creates a BiDuration from a signed duration.
func NewBiDuration(d time.Duration) BiDuration {
	return BiDuration(d)
}

// Duration returns the signed duration.
func (b BiDuration) Duration() time.Duration {
	return time.Duration(b)
}

// IsBackward returns true if the duration points into the past.
func (b BiDuration) IsBackward() bool {
	return b < 0
}

// AddTo shifts a point in time by the signed duration.
func (b BiDuration) AddTo(t time.Time) time.Time {
	return t.Add(time.Duration(b))
}

const (
	forwardMarker  = "in"
	backwardMarker = "ago"
)

// unitDurations maps every accepted duration unit to its length.
var unitDurations = map[string]time.Duration{
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
	"w":       7 * 24 * time.Hour,
	"wk":      7 * 24 * time.Hour,
	"week":    7 * 24 * time.Hour,
	"weeks":   7 * 24 * time.Hour,
}

// ParseBiDuration parses a directed duration string such as "in 5m",
// "1h 30m ago", or "45m". A leading "in" forces the forward direction, a
// trailing "ago" the backward one; with neither marker the duration points
// forward.
func ParseBiDuration(input string) (BiDuration, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, errors.NewInvalidDirectionError(input)
	}

	forward := fields[0] == forwardMarker
	backward := fields[len(fields)-1] == backwardMarker

	switch {
	case forward && backward:
		return 0, errors.NewBothDirectionsError(input)
	case forward:
		fields = fields[1:]
	case backward:
		fields = fields[:len(fields)-1]
	}

	magnitude, err := parseDurationMagnitude(input, strings.Join(fields, " "))
	if err != nil {
		return 0, err
	}

	if backward {
		return BiDuration(-magnitude), nil
	}
	return BiDuration(magnitude), nil
}

// parseDurationMagnitude parses a sequence of value/unit pairs such as
// "1h 30m" or "2days4h". The full input is reported on error so users see
// the direction marker they typed.
func parseDurationMagnitude(input string, magnitude string) (time.Duration, error) {
	rest := strings.TrimSpace(magnitude)
	if rest == "" {
		return 0, errors.NewInvalidDurationError(input, nil)
	}

	var total time.Duration
	for rest != "" {
		digits := leadingDigits(rest)
		if digits == "" {
			return 0, errors.NewInvalidDurationError(input, nil)
		}
		rest = strings.TrimLeft(rest[len(digits):], " \t")

		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				return 0, errors.NewOutOfRangeError(input)
			}
			return 0, errors.NewInvalidDurationError(input, err)
		}

		letters := leadingLetters(rest)
		if letters == "" {
			return 0, errors.NewInvalidDurationError(input, nil)
		}
		rest = strings.TrimLeft(rest[len(letters):], " \t")

		unit, ok := unitDurations[letters]
		if !ok {
			return 0, errors.NewInvalidDurationError(input, nil)
		}

		if value > int64(math.MaxInt64/int64(unit)) {
			return 0, errors.NewOutOfRangeError(input)
		}
		part := time.Duration(value) * unit
		if total > math.MaxInt64-part {
			return 0, errors.NewOutOfRangeError(input)
		}
		total += part
	}

	return total, nil
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func leadingLetters(s string) string {
	i := 0
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	return s[:i]
}

// Format renders the duration with its direction marker, e.g. "in 1h 30m"
// or "1h 30m ago".
func (b BiDuration) Format() string {
	magnitude := formatMagnitude(b.abs())
	if b.IsBackward() {
		return magnitude + " " + backwardMarker
	}
	return forwardMarker + " " + magnitude
}

// FormatRelative renders the duration with its direction marker, truncated
// to whole seconds for display.
func (b BiDuration) FormatRelative() string {
	truncated := time.Duration(b).Truncate(time.Second)
	return BiDuration(truncated).Format()
}

// FormatExact renders the duration magnitude without a direction marker,
// e.g. "7h 30m 15s".
func (b BiDuration) FormatExact() string {
	return formatMagnitude(b.abs())
}

// FormatHours renders the duration magnitude rounded to whole hours and
// minutes, e.g. "7 hours 30 minutes". Components that round to zero are
// omitted; a duration under thirty seconds renders as "0 minutes".
func (b BiDuration) FormatHours() string {
	d := b.abs()

	minutes := int64(d / time.Minute)
	if d%time.Minute >= 30*time.Second {
		minutes++
	}
	hours := minutes / 60
	minutes %= 60

	hoursPart := pluralize(hours, "hour")
	minutesPart := pluralize(minutes, "minute")

	switch {
	case hours == 0:
		return minutesPart
	case minutes == 0:
		return hoursPart
	default:
		return hoursPart + " " + minutesPart
	}
}

// String returns the directed display form of the duration.
func (b BiDuration) String() string {
	return b.Format()
}

// abs returns the duration magnitude, saturating at the maximum
// representable duration.
func (b BiDuration) abs() time.Duration {
	d := time.Duration(b)
	if d < 0 {
		if d == math.MinInt64 {
			return math.MaxInt64
		}
		return -d
	}
	return d
}

// formatMagnitude renders a non-negative duration as space-separated
// value/unit pairs, truncating below one second.
func formatMagnitude(d time.Duration) string {
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	parts := make([]string, 0, 4)
	if days == 1 {
		parts = append(parts, "1day")
	} else if days > 1 {
		parts = append(parts, fmt.Sprintf("%ddays", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
