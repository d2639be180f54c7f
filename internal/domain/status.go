package domain

import (
	"time"
)

// StatusState describes what the event log says about a query time.
type StatusState int

const (
	// StatusNoLogFile means no event log exists yet.
	StatusNoLogFile StatusState = iota
	// StatusNoEntries means the log exists but holds no entry at or before
	// the query time.
	StatusNoEntries
	// StatusClocked means an entry at or before the query time determines
	// the active state.
	StatusClocked
)

// String returns the string representation of the status state.
func (s StatusState) String() string {
	switch s {
	case StatusNoLogFile:
		return "no_log_file"
	case StatusNoEntries:
		return "no_entries"
	case StatusClocked:
		return "clocked"
	default:
		return "unknown"
	}
}

// ClockStatus is the resolved clock state as of a query time.
//
// Until is set whenever any entry exists after the query time, including
// when no entry precedes it. Callers use Until to refuse writes that would
// land before existing history.
type ClockStatus struct {
	State  StatusState
	Active EntryType
	AsOf   time.Time
	Since  *time.Time
	Until  *time.Time
}

// ActiveKind returns the entry kind in force at the query time, if any.
func (s ClockStatus) ActiveKind() (EntryType, bool) {
	if s.State != StatusClocked {
		return "", false
	}
	return s.Active, true
}

// ClockedIn returns true if the status represents an open shift.
func (s ClockStatus) ClockedIn() bool {
	return s.State == StatusClocked && s.Active == ClockIn
}
