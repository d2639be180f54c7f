package services

import (
	"time"
)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	loc   *time.Location
	nowFn func() time.Time
}

// NewTimeService creates a new TimeService operating in the given location
func NewTimeService(loc *time.Location) TimeService {
	return NewTimeServiceWithNow(loc, time.Now)
}

// NewTimeServiceWithNow creates a TimeService with an injectable clock for
// tests
func NewTimeServiceWithNow(loc *time.Location, nowFn func() time.Time) TimeService {
	return &timeServiceImpl{
		loc:   loc,
		nowFn: nowFn,
	}
}

// Now returns the current time in the service location
func (s *timeServiceImpl) Now() time.Time {
	return s.nowFn().In(s.loc)
}

// Location returns the timezone all calendar math is done in
func (s *timeServiceImpl) Location() *time.Location {
	return s.loc
}

// StartOfDay returns midnight of t's calendar day in the service location
func (s *timeServiceImpl) StartOfDay(t time.Time) time.Time {
	local := t.In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
}

// StartOfWeek returns midnight of the Monday of t's week in the service
// location. Weeks start on Monday, so a Sunday timestamp belongs to the week
// that began six days earlier.
func (s *timeServiceImpl) StartOfWeek(t time.Time) time.Time {
	day := s.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
