package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

func TestCurrent(t *testing.T) {
	cal, err := calendar.Load("America/Los_Angeles")
	require.NoError(t, err)
	loc := cal.Location()

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, loc)
	daysAgo := func(n int, hour int) time.Time {
		return time.Date(2026, 10, 18-n, hour, 0, 0, 0, loc)
	}

	tests := []struct {
		name     string
		entries  []time.Time
		expected int
	}{
		{
			name:     "no entries",
			entries:  nil,
			expected: 0,
		},
		{
			name:     "only today",
			entries:  []time.Time{daysAgo(0, 8)},
			expected: 1,
		},
		{
			name:     "three consecutive days",
			entries:  []time.Time{daysAgo(0, 8), daysAgo(1, 20), daysAgo(2, 7)},
			expected: 3,
		},
		{
			name:     "gap breaks continuation",
			entries:  []time.Time{daysAgo(0, 8), daysAgo(3, 8)},
			expected: 1,
		},
		{
			name:     "several entries on the same day count once",
			entries:  []time.Time{daysAgo(0, 1), daysAgo(0, 5), daysAgo(0, 8), daysAgo(1, 10)},
			expected: 2,
		},
		{
			name:     "yesterday without today keeps the streak alive",
			entries:  []time.Time{daysAgo(1, 21), daysAgo(2, 21)},
			expected: 2,
		},
		{
			name:     "last entry two days ago breaks the streak",
			entries:  []time.Time{daysAgo(2, 21), daysAgo(3, 21), daysAgo(4, 21)},
			expected: 0,
		},
		{
			name:     "input order does not matter",
			entries:  []time.Time{daysAgo(2, 7), daysAgo(0, 8), daysAgo(1, 20)},
			expected: 3,
		},
		{
			// 06:30 UTC on the 18th is still the 17th in Los Angeles
			name:     "days are taken in the configured timezone",
			entries:  []time.Time{time.Date(2026, 10, 18, 6, 30, 0, 0, time.UTC), daysAgo(2, 12)},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Current(tt.entries, now, cal))
		})
	}
}

func TestCurrent_BoundedToMostRecentEntries(t *testing.T) {
	cal := calendar.New(time.UTC)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	entries := make([]time.Time, 0, 150)
	for i := 0; i < 150; i++ {
		entries = append(entries, now.AddDate(0, 0, -i))
	}

	assert.Equal(t, MaxEntries, Current(entries, now, cal))
}

func TestCurrent_DoesNotMutateInput(t *testing.T) {
	cal := calendar.New(time.UTC)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	entries := []time.Time{now.AddDate(0, 0, -1), now}

	Current(entries, now, cal)

	assert.True(t, entries[0].Equal(now.AddDate(0, 0, -1)))
	assert.True(t, entries[1].Equal(now))
}
