package services

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"punchcard/internal/domain"
	"punchcard/internal/repository/csvlog"
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repo        csvlog.Repository
	mapper      *domain.Mapper
	timeService TimeService
}

// NewReportService creates a new ReportService instance
func NewReportService(repo csvlog.Repository, timeService TimeService) ReportService {
	return &reportServiceImpl{
		repo:        repo,
		mapper:      domain.NewMapper(),
		timeService: timeService,
	}
}

// Daily buckets the current week's completed shifts by calendar day. The
// window is the Monday-start week containing now, and a shift belongs to the
// day its clock-out lands on.
func (s *reportServiceImpl) Daily(ctx context.Context) (*domain.Report, error) {
	shifts, err := s.completedShifts()
	if err != nil {
		return nil, err
	}

	weekStart := s.timeService.StartOfWeek(s.timeService.Now())
	weekEnd := weekStart.AddDate(0, 0, 7)

	buckets := make(map[time.Time]*domain.ReportBucket)
	for _, shift := range shifts {
		if shift.End.Before(weekStart) || !shift.End.Before(weekEnd) {
			continue
		}
		day := s.timeService.StartOfDay(shift.End)
		s.accumulate(buckets, day, day.AddDate(0, 0, 1), shift)
	}

	log.Debug("daily report built", "shifts", len(shifts), "buckets", len(buckets))
	return s.finalize(domain.ReportDaily, buckets), nil
}

// Weekly buckets completed shifts by Monday-start week. With a concrete
// month the shifts are filtered to it before bucketing; with spill-over the
// whole log is bucketed first and whole weeks touching the month are kept,
// so a spill week reports its full total. Month "all" disables both.
func (s *reportServiceImpl) Weekly(ctx context.Context, month domain.Month, spillOver bool) (*domain.Report, error) {
	shifts, err := s.completedShifts()
	if err != nil {
		return nil, err
	}

	var monthStart, monthEnd time.Time
	filterByMonth := !month.IsAll()
	if filterByMonth {
		monthStart, monthEnd = month.Range(s.timeService.Location())
	}

	buckets := make(map[time.Time]*domain.ReportBucket)
	for _, shift := range shifts {
		if filterByMonth && !spillOver {
			if shift.End.Before(monthStart) || !shift.End.Before(monthEnd) {
				continue
			}
		}
		week := s.timeService.StartOfWeek(shift.End)
		s.accumulate(buckets, week, week.AddDate(0, 0, 7), shift)
	}

	if filterByMonth && spillOver {
		for week, bucket := range buckets {
			if !weekTouchesMonth(bucket.PeriodStart, bucket.PeriodEnd, monthStart, monthEnd) {
				delete(buckets, week)
			}
		}
	}

	log.Debug("weekly report built", "month", month, "spillOver", spillOver, "shifts", len(shifts), "buckets", len(buckets))
	return s.finalize(domain.ReportWeekly, buckets), nil
}

// completedShifts reads the whole log and pairs each clock-out with the
// entry before it. The log's alternation is trusted here; hand-edited logs
// with repeated kinds still pair each entry with its predecessor. A leading
// clock-out has no predecessor and is not a shift.
func (s *reportServiceImpl) completedShifts() ([]domain.Shift, error) {
	records, err := s.repo.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := s.mapper.Entry.FromRecordSlice(records)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	shifts := make([]domain.Shift, 0)
	for i := 1; i < len(entries); i++ {
		if entries[i].Kind == domain.ClockOut {
			shifts = append(shifts, domain.Shift{
				Start: entries[i-1].Timestamp,
				End:   entries[i].Timestamp,
			})
		}
	}
	return shifts, nil
}

// accumulate folds a shift into the bucket keyed by periodStart, creating
// the bucket on first use
func (s *reportServiceImpl) accumulate(buckets map[time.Time]*domain.ReportBucket, periodStart, periodEnd time.Time, shift domain.Shift) {
	bucket, ok := buckets[periodStart]
	if !ok {
		bucket = &domain.ReportBucket{
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
		}
		buckets[periodStart] = bucket
	}
	bucket.Total += shift.Duration()
	bucket.Shifts++
}

// finalize computes per-bucket averages and returns the buckets sorted
// ascending by period start. Only buckets with at least one shift exist, so
// the division is safe.
func (s *reportServiceImpl) finalize(period domain.ReportPeriod, buckets map[time.Time]*domain.ReportBucket) *domain.Report {
	report := &domain.Report{
		Period:  period,
		Buckets: make([]domain.ReportBucket, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		bucket.Average = bucket.Total / time.Duration(bucket.Shifts)
		report.Buckets = append(report.Buckets, *bucket)
	}
	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].PeriodStart.Before(report.Buckets[j].PeriodStart)
	})
	return report
}

// weekTouchesMonth reports whether a week bucket overlaps the month: it
// crosses into the month, crosses out of it, or starts inside it.
func weekTouchesMonth(weekStart, weekEnd, monthStart, monthEnd time.Time) bool {
	crossesIn := weekStart.Before(monthStart) && !weekEnd.Before(monthStart)
	crossesOut := weekStart.Before(monthEnd) && !weekEnd.Before(monthEnd)
	inside := !weekStart.Before(monthStart) && weekStart.Before(monthEnd)
	return crossesIn || crossesOut || inside
}
