package csvlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchcard/internal/errors"
)

func testRepository(t *testing.T) *CSVRepository {
	return New(filepath.Join(t.TempDir(), "hours.csv"))
}

func writeLog(t *testing.T, repo *CSVRepository, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))
}

func TestExists(t *testing.T) {
	repo := testRepository(t)

	assert.False(t, repo.Exists())

	err := repo.Append(Record{Kind: KindIn, Timestamp: time.Now()})
	require.NoError(t, err)

	assert.True(t, repo.Exists())
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	repo := testRepository(t)
	ts := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)

	err := repo.Append(Record{Kind: KindIn, Timestamp: ts})
	require.NoError(t, err)

	content, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, "entry_type,timestamp\nin,2023-05-01T09:00:00.000000000+0000\n", string(content))
}

func TestAppend_CreatesMissingDataFolder(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "nested", "deeper", "hours.csv"))

	err := repo.Append(Record{Kind: KindIn, Timestamp: time.Now()})
	require.NoError(t, err)

	assert.True(t, repo.Exists())
}

func TestAppend_WritesHeaderOnlyOnce(t *testing.T) {
	repo := testRepository(t)
	first := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2023, 5, 1, 17, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(Record{Kind: KindIn, Timestamp: first}))
	require.NoError(t, repo.Append(Record{Kind: KindOut, Timestamp: second}))

	content, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	expected := "entry_type,timestamp\n" +
		"in,2023-05-01T09:00:00.000000000+0000\n" +
		"out,2023-05-01T17:00:00.000000000+0000\n"
	assert.Equal(t, expected, string(content))
}

func TestAppendAll_WritesAllRecordsInOneCall(t *testing.T) {
	repo := testRepository(t)

	err := repo.AppendAll([]Record{
		{Kind: KindIn, Timestamp: time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)},
		{Kind: KindOut, Timestamp: time.Date(2023, 5, 1, 17, 0, 0, 0, time.UTC)},
		{Kind: KindIn, Timestamp: time.Date(2023, 5, 2, 9, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, KindOut, records[1].Kind)
}

func TestAppendAll_EmptySliceWritesNothing(t *testing.T) {
	repo := testRepository(t)

	require.NoError(t, repo.AppendAll(nil))

	assert.False(t, repo.Exists())
}

func TestReadAll_MissingFile(t *testing.T) {
	repo := testRepository(t)

	_, err := repo.ReadAll()

	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestReadAll_EmptyFile(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "")

	records, err := repo.ReadAll()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadAll_RoundTrip(t *testing.T) {
	repo := testRepository(t)
	timestamps := []time.Time{
		time.Date(2023, 5, 1, 9, 0, 0, 26490000, time.UTC),
		time.Date(2023, 5, 1, 17, 30, 45, 0, time.UTC),
	}

	require.NoError(t, repo.Append(Record{Kind: KindIn, Timestamp: timestamps[0]}))
	require.NoError(t, repo.Append(Record{Kind: KindOut, Timestamp: timestamps[1]}))

	records, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, KindIn, records[0].Kind)
	assert.Equal(t, timestamps[0].UnixNano(), records[0].Timestamp.UnixNano())
	assert.Equal(t, KindOut, records[1].Kind)
	assert.Equal(t, timestamps[1].UnixNano(), records[1].Timestamp.UnixNano())
}

func TestReadAll_SkipsBlankLines(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "entry_type,timestamp\n\nin,2023-05-01T09:00:00.000000000+0000\n\n")

	records, err := repo.ReadAll()

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadAll_AcceptsColonOffset(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "entry_type,timestamp\nin,2023-05-01T09:00:00.000000000-07:00\n")

	records, err := repo.ReadAll()

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, KindIn, records[0].Kind)
}

func TestReadAll_CollectsAllMalformedLines(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "entry_type,timestamp\n"+
		"in,2023-05-01T09:00:00.000000000+0000\n"+
		"banana,2023-05-01T10:00:00.000000000+0000\n"+
		"out,not-a-time\n"+
		"in\n"+
		"out,2023-05-01T17:00:00.000000000+0000\n")

	_, err := repo.ReadAll()

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeMalformedLog))

	records, ok := errors.MalformedRecords(err)
	require.True(t, ok)
	require.Len(t, records, 3)
	assert.Equal(t, 3, records[0].Line)
	assert.Contains(t, records[0].Reason, "unknown entry type")
	assert.Equal(t, 4, records[1].Line)
	assert.Contains(t, records[1].Reason, "invalid timestamp")
	assert.Equal(t, 5, records[2].Line)
	assert.Contains(t, records[2].Reason, "expected 2 fields")
}

func TestReadAll_InvalidHeader(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "kind,when\nin,2023-05-01T09:00:00.000000000+0000\n")

	_, err := repo.ReadAll()

	require.Error(t, err)
	records, ok := errors.MalformedRecords(err)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, "invalid header", records[0].Reason)
}

func TestLastBefore(t *testing.T) {
	repo := testRepository(t)
	morning := time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2023, 5, 1, 17, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(Record{Kind: KindIn, Timestamp: morning}))
	require.NoError(t, repo.Append(Record{Kind: KindOut, Timestamp: evening}))

	tests := []struct {
		name     string
		at       time.Time
		wantLast *string
		wantNext *string
	}{
		{
			name:     "before first entry",
			at:       morning.Add(-time.Hour),
			wantLast: nil,
			wantNext: strPtr(KindIn),
		},
		{
			name:     "between entries",
			at:       morning.Add(4 * time.Hour),
			wantLast: strPtr(KindIn),
			wantNext: strPtr(KindOut),
		},
		{
			name:     "after last entry",
			at:       evening.Add(time.Hour),
			wantLast: strPtr(KindOut),
			wantNext: nil,
		},
		{
			name:     "exactly at an entry counts as last",
			at:       morning,
			wantLast: strPtr(KindIn),
			wantNext: strPtr(KindOut),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last, next, err := repo.LastBefore(tt.at)
			require.NoError(t, err)

			if tt.wantLast == nil {
				assert.Nil(t, last)
			} else {
				require.NotNil(t, last)
				assert.Equal(t, *tt.wantLast, last.Kind)
			}
			if tt.wantNext == nil {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, *tt.wantNext, next.Kind)
			}
		})
	}
}

func TestLastBefore_MalformedLogFailsClosed(t *testing.T) {
	repo := testRepository(t)
	writeLog(t, repo, "entry_type,timestamp\nbanana,oops\n")

	_, _, err := repo.LastBefore(time.Now())

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeMalformedLog))
}

func strPtr(s string) *string {
	return &s
}
