package services

import (
	"context"
	"time"

	"punchcard/internal/domain"
	"punchcard/internal/repository/csvlog"
)

// statusServiceImpl implements the StatusService interface
type statusServiceImpl struct {
	repo        csvlog.Repository
	mapper      *domain.Mapper
	timeService TimeService
}

// NewStatusService creates a new StatusService instance
func NewStatusService(repo csvlog.Repository, timeService TimeService) StatusService {
	return &statusServiceImpl{
		repo:        repo,
		mapper:      domain.NewMapper(),
		timeService: timeService,
	}
}

// Resolve resolves the clock status at now shifted by the optional offset
func (s *statusServiceImpl) Resolve(ctx context.Context, offset *domain.BiDuration) (*domain.ClockStatus, error) {
	at := s.timeService.Now()
	if offset != nil {
		at = offset.AddTo(at)
	}
	return s.ResolveAt(ctx, at)
}

// ResolveAt resolves the clock status as of an arbitrary instant. The state
// is carried by the last entry at or before the instant; Until is set
// whenever a later entry exists, even when nothing precedes the instant, so
// the continuity guard can reject backdating before the first entry.
func (s *statusServiceImpl) ResolveAt(ctx context.Context, at time.Time) (*domain.ClockStatus, error) {
	status := &domain.ClockStatus{
		State: domain.StatusNoLogFile,
		AsOf:  at,
	}
	if !s.repo.Exists() {
		return status, nil
	}

	last, next, err := s.repo.LastBefore(at)
	if err != nil {
		return nil, err
	}

	if next != nil {
		nextEntry := s.mapper.Entry.FromRecord(*next)
		status.Until = &nextEntry.Timestamp
	}

	if last == nil {
		status.State = domain.StatusNoEntries
		return status, nil
	}

	lastEntry := s.mapper.Entry.FromRecord(*last)
	status.State = domain.StatusClocked
	status.Active = lastEntry.Kind
	status.Since = &lastEntry.Timestamp
	return status, nil
}
