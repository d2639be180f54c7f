package services

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchcard/internal/domain"
	"punchcard/internal/errors"
	"punchcard/internal/repository/csvlog"
	"punchcard/internal/validation"
)

func setupGeneratorService(t *testing.T, now time.Time) (GeneratorService, *csvlog.CSVRepository) {
	repo := csvlog.New(filepath.Join(t.TempDir(), "hours.csv"))
	timeService := NewTimeServiceWithNow(time.UTC, func() time.Time { return now })
	rng := rand.New(rand.NewSource(42))
	return NewGeneratorServiceWithRand(repo, timeService, rng), repo
}

func TestGeneratorService_Generate_WritesAlternatingEntries(t *testing.T) {
	service, repo := setupGeneratorService(t, testNow)

	entries, err := service.Generate(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 10)

	assert.Equal(t, domain.ClockIn, entries[0].Kind)
	assert.True(t, entries[0].Timestamp.Equal(testNow))

	for i, entry := range entries {
		expected := domain.ClockIn
		if i%2 == 1 {
			expected = domain.ClockOut
		}
		assert.Equal(t, expected, entry.Kind, "entry %d", i)

		if i > 0 {
			gap := entry.Timestamp.Sub(entries[i-1].Timestamp)
			assert.GreaterOrEqual(t, gap, time.Duration(0), "entry %d", i)
			assert.Less(t, gap, 7*time.Hour, "entry %d", i)
		}
	}

	persisted := readEntries(t, repo)
	require.Len(t, persisted, 10)
	for i, entry := range persisted {
		assert.Equal(t, entries[i].Kind, entry.Kind, "entry %d", i)
		assert.True(t, entry.Timestamp.Equal(entries[i].Timestamp), "entry %d", i)
	}
}

func TestGeneratorService_Generate_OddCountEndsClockedIn(t *testing.T) {
	service, _ := setupGeneratorService(t, testNow)

	entries, err := service.Generate(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, domain.ClockIn, entries[len(entries)-1].Kind)
}

func TestGeneratorService_Generate_InvalidCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"should reject zero", 0},
		{"should reject a negative count", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := setupGeneratorService(t, testNow)

			_, err := service.Generate(context.Background(), tt.count)

			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
			assert.False(t, repo.Exists())
		})
	}
}

func TestGeneratorService_Generate_RefusesNonEmptyLog(t *testing.T) {
	service, repo := setupGeneratorService(t, testNow)
	writeEntries(t, repo, entryAt(domain.ClockIn, testNow.Add(-time.Hour)))

	_, err := service.Generate(context.Background(), 10)

	require.Error(t, err)
	assert.Equal(t, "LOG_NOT_EMPTY", errors.GetErrorCode(err))
	assert.Len(t, readEntries(t, repo), 1)
}

func TestGeneratorService_Generate_AllowsHeaderOnlyLog(t *testing.T) {
	service, repo := setupGeneratorService(t, testNow)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(csvlog.Header+"\n"), 0o644))

	entries, err := service.Generate(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, entries, 4)
	assert.Len(t, readEntries(t, repo), 4)
}

func TestGeneratorService_Generate_MalformedLogFailsClosed(t *testing.T) {
	service, repo := setupGeneratorService(t, testNow)
	content := csvlog.Header + "\nbanana,2023\n"
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))

	_, err := service.Generate(context.Background(), 10)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeMalformedLog))
}
