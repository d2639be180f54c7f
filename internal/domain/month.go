package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"punchcard/internal/errors"
)

// Month selects a calendar month for report filtering, or all of history.
type Month struct {
	all   bool
	year  int
	month time.Month
}

// AllMonths returns the selector that disables month filtering.
func AllMonths() Month {
	return Month{all: true}
}

// MonthOf returns the selector for a specific calendar month.
func MonthOf(year int, month time.Month) Month {
	return Month{year: year, month: month}
}

// CurrentMonth returns the selector for the month containing now.
func CurrentMonth(now time.Time) Month {
	return MonthOf(now.Year(), now.Month())
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseMonth parses a month selector anchored on now. It accepts "all", the
// relative selectors "current", "previous", and "next", a month number from
// 1 to 12, or a full English month name. Numbers and names resolve within
// now's year.
func ParseMonth(input string, now time.Time) (Month, error) {
	if num, err := strconv.Atoi(input); err == nil {
		if num < 1 || num > 12 {
			return Month{}, errors.NewInvalidMonthNumberError(num)
		}
		return MonthOf(now.Year(), time.Month(num)), nil
	}

	switch strings.ToLower(input) {
	case "all":
		return AllMonths(), nil
	case "current":
		return CurrentMonth(now), nil
	case "previous":
		lastOfPrevious := firstOfMonth(now).AddDate(0, 0, -1)
		return MonthOf(lastOfPrevious.Year(), lastOfPrevious.Month()), nil
	case "next":
		firstOfNext := firstOfMonth(now).AddDate(0, 1, 0)
		return MonthOf(firstOfNext.Year(), firstOfNext.Month()), nil
	}

	if month, ok := monthNames[strings.ToLower(input)]; ok {
		return MonthOf(now.Year(), month), nil
	}

	return Month{}, errors.NewUnknownMonthError(input)
}

// IsAll returns true if the selector disables month filtering.
func (m Month) IsAll() bool {
	return m.all
}

// Range returns the half-open interval [start, end) covering the month in
// the given location. It must not be called on the all selector.
func (m Month) Range(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(m.year, m.month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// String returns the display form of the selector, e.g. "May 2023" or "all".
func (m Month) String() string {
	if m.all {
		return "all"
	}
	return fmt.Sprintf("%s %d", m.month, m.year)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
