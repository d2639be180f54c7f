package domain

import (
	"time"
)

// EntryType identifies the direction of a clock entry.
type EntryType string

const (
	// ClockIn marks the start of a shift.
	ClockIn EntryType = "in"
	// ClockOut marks the end of a shift.
	ClockOut EntryType = "out"
)

// ParseEntryType converts a raw string into an EntryType.
func ParseEntryType(s string) (EntryType, bool) {
	switch EntryType(s) {
	case ClockIn:
		return ClockIn, true
	case ClockOut:
		return ClockOut, true
	default:
		return "", false
	}
}

// IsValid returns true if the entry type is one of the known kinds.
func (et EntryType) IsValid() bool {
	return et == ClockIn || et == ClockOut
}

// Opposite returns the entry type that follows this one in a well-formed log.
func (et EntryType) Opposite() EntryType {
	if et == ClockIn {
		return ClockOut
	}
	return ClockIn
}

// String returns the string representation of the entry type.
func (et EntryType) String() string {
	return string(et)
}

// Entry represents a single clock event in the domain model.
// This is a pure domain model without storage-specific concerns.
type Entry struct {
	Kind      EntryType
	Timestamp time.Time
}

// NewEntry creates a new Entry of the given kind.
func NewEntry(kind EntryType, timestamp time.Time) Entry {
	return Entry{
		Kind:      kind,
		Timestamp: timestamp,
	}
}

// IsValid checks if the entry has valid data.
func (e Entry) IsValid() bool {
	if !e.Kind.IsValid() {
		return false
	}
	if e.Timestamp.IsZero() {
		return false
	}
	return true
}
