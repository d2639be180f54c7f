package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeService_Now_ConvertsToLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	instant := time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)
	service := NewTimeServiceWithNow(loc, func() time.Time { return instant })

	now := service.Now()

	assert.True(t, now.Equal(instant))
	assert.Equal(t, loc, now.Location())
}

func TestTimeService_Location(t *testing.T) {
	service := NewTimeService(time.UTC)

	assert.Equal(t, time.UTC, service.Location())
}

func TestTimeService_StartOfDay(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected time.Time
	}{
		{
			name:     "should truncate a midmorning timestamp",
			at:       time.Date(2023, 5, 17, 10, 30, 45, 123456789, time.UTC),
			expected: time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "should leave midnight unchanged",
			at:       time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "should truncate the last instant of the day",
			at:       time.Date(2023, 5, 17, 23, 59, 59, 999999999, time.UTC),
			expected: time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	service := NewTimeService(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.StartOfDay(tt.at))
		})
	}
}

func TestTimeService_StartOfDay_ReprojectsForeignZones(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	service := NewTimeService(la)

	// 02:00 UTC on the 17th is still the evening of the 16th in Los Angeles.
	at := time.Date(2023, 5, 17, 2, 0, 0, 0, time.UTC)

	expected := time.Date(2023, 5, 16, 0, 0, 0, 0, la)
	assert.Equal(t, expected, service.StartOfDay(at))
}

func TestTimeService_StartOfWeek(t *testing.T) {
	monday := time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
	}{
		{"should return the same day for a Monday", time.Date(2023, 5, 15, 9, 0, 0, 0, time.UTC)},
		{"should go back two days from a Wednesday", time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC)},
		{"should go back six days from a Sunday", time.Date(2023, 5, 21, 23, 59, 59, 0, time.UTC)},
		{"should leave Monday midnight unchanged", monday},
	}

	service := NewTimeService(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, service.StartOfWeek(tt.at))
		})
	}
}
