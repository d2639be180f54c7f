// Package api exposes the punchcard core as a small operation facade. The
// CLI talks only to this interface, never to the services or the repository
// directly.
package api

import (
	"context"
	"time"

	"punchcard/internal/domain"
	"punchcard/internal/repository/csvlog"
	"punchcard/internal/services"
)

// API defines the interface for all punchcard operations
type API interface {
	// ========== Clock Operations ==========

	// ClockIn appends a clock-in entry at now shifted by the optional offset
	ClockIn(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)

	// ClockOut appends a clock-out entry at now shifted by the optional offset
	ClockOut(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)

	// Toggle appends the opposite of the currently active kind; an empty log
	// toggles to a clock-in
	Toggle(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error)

	// ========== Query Operations ==========

	// Status resolves the clock state at now shifted by the optional offset,
	// which may point into the past or the future
	Status(ctx context.Context, offset *domain.BiDuration) (*domain.ClockStatus, error)

	// Now returns the current instant in the configured timezone
	Now() time.Time

	// Location returns the configured timezone
	Location() *time.Location

	// ========== Reports ==========

	// DailyReport buckets the current week's shifts by calendar day
	DailyReport(ctx context.Context) (*domain.Report, error)

	// WeeklyReport buckets shifts by Monday-start week within the given month
	WeeklyReport(ctx context.Context, month domain.Month, spillOver bool) (*domain.Report, error)

	// ========== Test Data ==========

	// Generate appends count alternating test entries and returns how many
	// were written. It refuses to touch a log that already has entries.
	Generate(ctx context.Context, count int) (int, error)
}

// apiImpl implements the API interface by delegating to the service graph
type apiImpl struct {
	services *services.ServiceContainer
}

// New creates a new API instance over a single event log repository
func New(repo csvlog.Repository, loc *time.Location) API {
	return &apiImpl{
		services: services.NewServiceContainer(repo, loc),
	}
}

// NewWithServices creates an API over a prebuilt service container. Tests
// use it to inject a fixed clock.
func NewWithServices(container *services.ServiceContainer) API {
	return &apiImpl{
		services: container,
	}
}

func (a *apiImpl) ClockIn(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return a.services.ClockService.ClockIn(ctx, offset)
}

func (a *apiImpl) ClockOut(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return a.services.ClockService.ClockOut(ctx, offset)
}

func (a *apiImpl) Toggle(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return a.services.ClockService.Toggle(ctx, offset)
}

func (a *apiImpl) Status(ctx context.Context, offset *domain.BiDuration) (*domain.ClockStatus, error) {
	return a.services.StatusService.Resolve(ctx, offset)
}

func (a *apiImpl) Now() time.Time {
	return a.services.TimeService.Now()
}

func (a *apiImpl) Location() *time.Location {
	return a.services.TimeService.Location()
}

func (a *apiImpl) DailyReport(ctx context.Context) (*domain.Report, error) {
	return a.services.ReportService.Daily(ctx)
}

func (a *apiImpl) WeeklyReport(ctx context.Context, month domain.Month, spillOver bool) (*domain.Report, error) {
	return a.services.ReportService.Weekly(ctx, month, spillOver)
}

func (a *apiImpl) Generate(ctx context.Context, count int) (int, error) {
	entries, err := a.services.GeneratorService.Generate(ctx, count)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
