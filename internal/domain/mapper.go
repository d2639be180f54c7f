package domain

import (
	"punchcard/internal/repository/csvlog"
)

// EntryMapper handles conversion between domain and log file entry records.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToRecord converts a domain Entry to a log file Record.
func (m *EntryMapper) ToRecord(entry Entry) csvlog.Record {
	return csvlog.Record{
		Kind:      entry.Kind.String(),
		Timestamp: entry.Timestamp,
	}
}

// FromRecord converts a log file Record to a domain Entry. Records read
// from the log have already been validated, so the kind maps directly.
func (m *EntryMapper) FromRecord(record csvlog.Record) Entry {
	return Entry{
		Kind:      EntryType(record.Kind),
		Timestamp: record.Timestamp,
	}
}

// ToRecordSlice converts a slice of domain Entries to log file Records.
func (m *EntryMapper) ToRecordSlice(entries []Entry) []csvlog.Record {
	records := make([]csvlog.Record, len(entries))
	for i, entry := range entries {
		records[i] = m.ToRecord(entry)
	}
	return records
}

// FromRecordSlice converts a slice of log file Records to domain Entries.
func (m *EntryMapper) FromRecordSlice(records []csvlog.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, record := range records {
		entries[i] = m.FromRecord(record)
	}
	return entries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry *EntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry: NewEntryMapper(),
	}
}
