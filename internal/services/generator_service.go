package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"punchcard/internal/domain"
	"punchcard/internal/errors"
	"punchcard/internal/repository/csvlog"
	"punchcard/internal/validation"
)

// baseGap is the center of the randomized spacing between generated
// entries: gaps are uniform in [0, 2*baseGap).
const baseGap = 3*time.Hour + 30*time.Minute

// generatorServiceImpl implements the GeneratorService interface
type generatorServiceImpl struct {
	repo              csvlog.Repository
	mapper            *domain.Mapper
	timeService       TimeService
	generateValidator *validation.GenerateValidator
	rng               *rand.Rand
}

// NewGeneratorService creates a new GeneratorService instance
func NewGeneratorService(repo csvlog.Repository, timeService TimeService) GeneratorService {
	return NewGeneratorServiceWithRand(repo, timeService, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorServiceWithRand creates a GeneratorService with an injectable
// random source for tests
func NewGeneratorServiceWithRand(repo csvlog.Repository, timeService TimeService, rng *rand.Rand) GeneratorService {
	return &generatorServiceImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		timeService:       timeService,
		generateValidator: validation.NewGenerateValidator(),
		rng:               rng,
	}
}

// Generate appends count alternating entries starting at now, spaced by
// randomized gaps. It refuses to touch a log that already has entries so
// real data can never be buried under generated rows.
func (s *generatorServiceImpl) Generate(ctx context.Context, count int) ([]domain.Entry, error) {
	if err := s.generateValidator.ValidateCount(count); err != nil {
		return nil, err
	}

	if s.repo.Exists() {
		records, err := s.repo.ReadAll()
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			return nil, errors.NewLogNotEmptyError(s.repo.Path())
		}
	}

	entries := make([]domain.Entry, 0, count)
	timestamp := s.timeService.Now()
	for i := 0; i < count; i++ {
		if i > 0 {
			timestamp = timestamp.Add(s.randomGap())
		}
		kind := domain.ClockIn
		if i%2 == 1 {
			kind = domain.ClockOut
		}
		entries = append(entries, domain.NewEntry(kind, timestamp))
	}

	log.Debug("writing generated entries", "count", len(entries), "path", s.repo.Path())
	if err := s.repo.AppendAll(s.mapper.Entry.ToRecordSlice(entries)); err != nil {
		return nil, err
	}
	return entries, nil
}

// randomGap returns a uniform gap in [0, 2*baseGap) at second granularity
func (s *generatorServiceImpl) randomGap() time.Duration {
	seconds := s.rng.Int63n(int64(2 * baseGap / time.Second))
	return time.Duration(seconds) * time.Second
}
