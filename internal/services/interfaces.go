// Package services holds the core behavior behind the punchcard commands:
// the continuity-guarded clock, the status resolver, the calendar-bucketed
// report aggregator, and the test-data generator.
package services

import (
	"context"
	"time"

	"punchcard/internal/domain"
	"punchcard/internal/repository/csvlog"
)

// TimeService handles clock reads and calendar arithmetic in the configured
// timezone
type TimeService interface {
	// Now returns the current time in the service location
	Now() time.Time

	// Location returns the timezone all calendar math is done in
	Location() *time.Location

	// StartOfDay returns midnight of t's calendar day
	StartOfDay(t time.Time) time.Time

	// StartOfWeek returns midnight of the Monday of t's week
	StartOfWeek(t time.Time) time.Time
}

// ClockService handles the write path: guarded clock-in/out entries
type ClockService interface {
	// ClockIn appends a clock-in entry at now shifted by the optional offset
	ClockIn(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)

	// ClockOut appends a clock-out entry at now shifted by the optional offset
	ClockOut(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)

	// Toggle appends the opposite of the currently active kind; an empty log
	// toggles to a clock-in
	Toggle(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)
}

// StatusService handles the read path: resolving the clock state at a point
// in time
type StatusService interface {
	// Resolve resolves the clock status at now shifted by the optional offset
	Resolve(ctx context.Context, offset *domain.BiDuration) (*domain.ClockStatus, error)

	// ResolveAt resolves the clock status as of an arbitrary instant, which
	// may be in the past or the future
	ResolveAt(ctx context.Context, at time.Time) (*domain.ClockStatus, error)
}

// ReportService handles aggregation of completed shifts into calendar buckets
type ReportService interface {
	// Daily buckets the current week's shifts by calendar day
	Daily(ctx context.Context) (*domain.Report, error)

	// Weekly buckets shifts by Monday-start week, filtered to the given
	// month. Spill-over keeps whole weeks that cross the month boundary
	// instead of filtering shift by shift.
	Weekly(ctx context.Context, month domain.Month, spillOver bool) (*domain.Report, error)
}

// GeneratorService handles test-data generation for trying out the tool
type GeneratorService interface {
	// Generate appends count alternating entries with randomized gaps,
	// starting at now. It refuses to touch a log that already has entries.
	Generate(ctx context.Context, count int) ([]domain.Entry, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService      TimeService
	ClockService     ClockService
	StatusService    StatusService
	ReportService    ReportService
	GeneratorService GeneratorService
}

// NewServiceContainer wires the full service graph over a single repository
func NewServiceContainer(repo csvlog.Repository, loc *time.Location) *ServiceContainer {
	timeService := NewTimeService(loc)
	statusService := NewStatusService(repo, timeService)
	return &ServiceContainer{
		TimeService:      timeService,
		StatusService:    statusService,
		ClockService:     NewClockService(repo, timeService, statusService),
		ReportService:    NewReportService(repo, timeService),
		GeneratorService: NewGeneratorService(repo, timeService),
	}
}
