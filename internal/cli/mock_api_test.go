package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"punchcard/internal/config"
	"punchcard/internal/domain"
)

// mockAPI implements the api.API interface for testing. Clock operations
// append to an in-memory log without continuity checks; error fields force
// failures, and the report fields hold canned results.
type mockAPI struct {
	entries   []domain.Entry
	logExists bool
	now       time.Time
	loc       *time.Location

	daily  *domain.Report
	weekly *domain.Report

	lastMonth     domain.Month
	lastSpillOver bool

	clockErr    error
	statusErr   error
	reportErr   error
	generateErr error

	generatedCount int
}

// newMockAPI creates a mock pinned to a fixed Monday morning so rendered
// output is deterministic.
func newMockAPI() *mockAPI {
	loc := time.FixedZone("PDT", -7*60*60)
	return &mockAPI{
		now: time.Date(2023, 5, 1, 9, 0, 0, 0, loc),
		loc: loc,
	}
}

func (m *mockAPI) appendEntry(kind domain.EntryType, offset *domain.BiDuration) (*domain.Entry, error) {
	if m.clockErr != nil {
		return nil, m.clockErr
	}

	timestamp := m.now
	if offset != nil {
		timestamp = offset.AddTo(m.now)
	}

	entry := domain.NewEntry(kind, timestamp)
	m.entries = append(m.entries, entry)
	m.logExists = true
	return &entry, nil
}

func (m *mockAPI) ClockIn(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return m.appendEntry(domain.ClockIn, offset)
}

func (m *mockAPI) ClockOut(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return m.appendEntry(domain.ClockOut, offset)
}

func (m *mockAPI) Toggle(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	kind := domain.ClockIn
	if len(m.entries) > 0 && m.entries[len(m.entries)-1].Kind == domain.ClockIn {
		kind = domain.ClockOut
	}
	return m.appendEntry(kind, offset)
}

func (m *mockAPI) Status(ctx context.Context, offset *domain.BiDuration) (*domain.ClockStatus, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}

	asOf := m.now
	if offset != nil {
		asOf = offset.AddTo(m.now)
	}

	status := &domain.ClockStatus{State: domain.StatusNoEntries, AsOf: asOf}
	if !m.logExists {
		status.State = domain.StatusNoLogFile
		return status, nil
	}

	for i := range m.entries {
		entry := m.entries[i]
		if !entry.Timestamp.After(asOf) {
			status.State = domain.StatusClocked
			status.Active = entry.Kind
			since := entry.Timestamp
			status.Since = &since
		} else {
			until := entry.Timestamp
			status.Until = &until
			break
		}
	}

	return status, nil
}

func (m *mockAPI) Now() time.Time {
	return m.now
}

func (m *mockAPI) Location() *time.Location {
	return m.loc
}

func (m *mockAPI) DailyReport(ctx context.Context) (*domain.Report, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return m.daily, nil
}

func (m *mockAPI) WeeklyReport(ctx context.Context, month domain.Month, spillOver bool) (*domain.Report, error) {
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	m.lastMonth = month
	m.lastSpillOver = spillOver
	return m.weekly, nil
}

func (m *mockAPI) Generate(ctx context.Context, count int) (int, error) {
	if m.generateErr != nil {
		return 0, m.generateErr
	}
	m.generatedCount = count
	return count, nil
}

// setupTestAppWithMockAPI creates a test app with a mock API. Color is
// disabled so assertions can match plain strings, and output is captured in
// the returned buffer.
func setupTestAppWithMockAPI(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	mock := newMockAPI()
	cfg := config.NewConfig()
	cfg.Application.NoColor = true

	out := &bytes.Buffer{}
	app := NewAppWithOutput(mock, cfg, out)

	return app, mock, out
}
