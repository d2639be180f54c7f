package services

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"punchcard/internal/domain"
	"punchcard/internal/errors"
	"punchcard/internal/repository/csvlog"
	"punchcard/internal/validation"
)

// clockServiceImpl implements the ClockService interface
type clockServiceImpl struct {
	repo           csvlog.Repository
	mapper         *domain.Mapper
	timeService    TimeService
	statusService  StatusService
	entryValidator *validation.EntryValidator
}

// NewClockService creates a new ClockService instance
func NewClockService(repo csvlog.Repository, timeService TimeService, statusService StatusService) ClockService {
	return &clockServiceImpl{
		repo:           repo,
		mapper:         domain.NewMapper(),
		timeService:    timeService,
		statusService:  statusService,
		entryValidator: validation.NewEntryValidator(),
	}
}

// ClockIn appends a clock-in entry at now shifted by the optional offset
func (s *clockServiceImpl) ClockIn(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return s.addEntry(ctx, domain.ClockIn, offset)
}

// ClockOut appends a clock-out entry at now shifted by the optional offset
func (s *clockServiceImpl) ClockOut(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	return s.addEntry(ctx, domain.ClockOut, offset)
}

// Toggle appends the opposite of the currently active kind. The offset moves
// only the appended entry, not the query deciding which kind is active; an
// empty log has no active kind and toggles to a clock-in.
func (s *clockServiceImpl) Toggle(ctx context.Context, offset *domain.BiDuration) (*domain.Entry, error) {
	status, err := s.statusService.ResolveAt(ctx, s.timeService.Now())
	if err != nil {
		return nil, err
	}

	kind := domain.ClockIn
	if active, ok := status.ActiveKind(); ok {
		kind = active.Opposite()
	}
	return s.addEntry(ctx, kind, offset)
}

// addEntry resolves the status at the effective time and appends an entry of
// the requested kind if the guard allows it
func (s *clockServiceImpl) addEntry(ctx context.Context, kind domain.EntryType, offset *domain.BiDuration) (*domain.Entry, error) {
	effective := s.effectiveTime(offset)

	status, err := s.statusService.ResolveAt(ctx, effective)
	if err != nil {
		return nil, err
	}
	return s.append(status, kind, effective)
}

// effectiveTime returns now shifted by the optional offset
func (s *clockServiceImpl) effectiveTime(offset *domain.BiDuration) time.Time {
	effective := s.timeService.Now()
	if offset != nil {
		effective = offset.AddTo(effective)
	}
	return effective
}

// append runs the continuity guard against the resolved status and writes
// the entry. This is the only mutation of the event log in the core.
func (s *clockServiceImpl) append(status *domain.ClockStatus, kind domain.EntryType, effective time.Time) (*domain.Entry, error) {
	if err := s.guard(status, kind); err != nil {
		return nil, err
	}

	entry := domain.NewEntry(kind, effective)
	if err := s.entryValidator.ValidateEntry(entry); err != nil {
		return nil, err
	}

	log.Debug("appending entry", "kind", kind, "at", effective)
	if err := s.repo.Append(s.mapper.Entry.ToRecord(entry)); err != nil {
		return nil, err
	}
	return &entry, nil
}

// guard rejects entries that would land before existing history or repeat
// the active kind. Continuity wins when both apply.
func (s *clockServiceImpl) guard(status *domain.ClockStatus, kind domain.EntryType) error {
	if status.Until != nil {
		return errors.NewContinuityError(status.AsOf, *status.Until)
	}
	if active, ok := status.ActiveKind(); ok && active == kind {
		return errors.NewAlreadyClockedError(string(kind))
	}
	return nil
}
