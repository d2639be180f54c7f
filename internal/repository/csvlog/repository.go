// Package csvlog stores clock entries in an append-only CSV file.
//
// The log file is the single source of truth and is written without any
// locking: two processes appending at once may interleave lines. The tool
// assumes a single interactive user per log file.
package csvlog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"punchcard/internal/errors"
)

// Repository defines the interface for event log operations
type Repository interface {
	// Exists reports whether the event log file is present
	Exists() bool

	// ReadAll returns every record in file order. The whole log is
	// validated on every read: any malformed line fails the read.
	ReadAll() ([]Record, error)

	// Append adds a record to the end of the log, creating the file and
	// its header when missing
	Append(record Record) error

	// AppendAll adds records to the end of the log in one write, creating
	// the file and its header when missing
	AppendAll(records []Record) error

	// LastBefore returns the latest record at or before t and the earliest
	// record after t, either of which may be nil
	LastBefore(t time.Time) (*Record, *Record, error)

	// Path returns the log file location
	Path() string
}

// CSVRepository implements the Repository interface over a single CSV file
type CSVRepository struct {
	path string
}

// New creates a new CSV repository for the given log file path
func New(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// Path returns the log file location
func (r *CSVRepository) Path() string {
	return r.path
}

// Exists reports whether the event log file is present
func (r *CSVRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// ReadAll reads and validates the entire event log. Malformed lines are
// collected so the user sees every problem at once rather than one per run.
func (r *CSVRepository) ReadAll() ([]Record, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("event log", r.path)
		}
		return nil, errors.NewIOError("open", r.path, err)
	}
	defer file.Close()

	var (
		records   []Record
		malformed []errors.MalformedRecord
	)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	headerSeen := false
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			if line != Header {
				malformed = append(malformed, errors.MalformedRecord{
					Line:   lineNo,
					Raw:    line,
					Reason: "invalid header",
				})
			}
			continue
		}

		record, reason := parseLine(line)
		if reason != "" {
			malformed = append(malformed, errors.MalformedRecord{
				Line:   lineNo,
				Raw:    line,
				Reason: reason,
			})
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", r.path, err)
	}

	if len(malformed) > 0 {
		return nil, errors.NewMalformedLogError(r.path, malformed)
	}
	return records, nil
}

// parseLine parses a single data line, returning a non-empty reason when
// the line is malformed. Neither field of a well-formed line can contain a
// comma, so a plain split is sufficient.
func parseLine(line string) (Record, string) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Record{}, fmt.Sprintf("expected 2 fields, got %d", len(fields))
	}

	kind := fields[0]
	if kind != KindIn && kind != KindOut {
		return Record{}, fmt.Sprintf("unknown entry type %q", kind)
	}

	timestamp, err := ParseTimeFromLog(fields[1])
	if err != nil {
		return Record{}, "invalid timestamp"
	}

	return Record{Kind: kind, Timestamp: timestamp}, ""
}

// Append adds a record to the end of the log, writing the header first when
// the file does not exist yet.
func (r *CSVRepository) Append(record Record) error {
	return r.AppendAll([]Record{record})
}

// AppendAll adds records to the end of the log in one write, writing the
// header first when the file does not exist yet.
func (r *CSVRepository) AppendAll(records []Record) error {
	if len(records) == 0 {
		return nil
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError("create data folder", dir, err)
	}

	_, statErr := os.Stat(r.path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.NewIOError("open", r.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write([]string{HeaderKind, HeaderTimestamp}); err != nil {
			return errors.NewIOError("write header", r.path, err)
		}
	}
	for _, record := range records {
		if err := writer.Write([]string{record.Kind, FormatTimeForLog(record.Timestamp)}); err != nil {
			return errors.NewIOError("write record", r.path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewIOError("flush", r.path, err)
	}
	return nil
}

// LastBefore scans the log in file order for the latest record at or before
// t and the earliest record after it. The scan stops at the first later
// record, matching the append-only ordering of a healthy log.
func (r *CSVRepository) LastBefore(t time.Time) (*Record, *Record, error) {
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var last, next *Record
	for i := range records {
		record := records[i]
		if record.Timestamp.After(t) {
			next = &record
			break
		}
		last = &record
	}
	return last, next, nil
}
