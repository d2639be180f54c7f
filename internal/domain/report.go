package domain

import (
	"time"
)

// ReportPeriod selects the bucketing granularity of a report.
type ReportPeriod int

const (
	// ReportDaily buckets shifts by calendar day.
	ReportDaily ReportPeriod = iota
	// ReportWeekly buckets shifts by Monday-started week.
	ReportWeekly
)

// String returns the string representation of the report period.
func (p ReportPeriod) String() string {
	switch p {
	case ReportDaily:
		return "daily"
	case ReportWeekly:
		return "weekly"
	default:
		return "unknown"
	}
}

// Shift is a completed span between a clock-in and the following clock-out.
type Shift struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the shift.
func (s Shift) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// ReportBucket aggregates the shifts whose clock-out fell inside one
// calendar period.
type ReportBucket struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Total       time.Duration
	Shifts      int
	Average     time.Duration
}

// Report is a sequence of non-empty buckets in ascending period order.
type Report struct {
	Period  ReportPeriod
	Buckets []ReportBucket
}

// Total returns the summed duration across all buckets.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, bucket := range r.Buckets {
		total += bucket.Total
	}
	return total
}
