package csvlog

import "time"

// Field names of the event log header, in column order.
const (
	HeaderKind      = "entry_type"
	HeaderTimestamp = "timestamp"
)

// Header is the first line of every event log file.
const Header = HeaderKind + "," + HeaderTimestamp

// Valid values of the entry_type field.
const (
	KindIn  = "in"
	KindOut = "out"
)

// Record represents a single line of the event log.
type Record struct {
	Kind      string
	Timestamp time.Time
}
