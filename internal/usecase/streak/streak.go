// Package streak counts consecutive journaling days.
package streak

import (
	"slices"
	"time"

	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

// MaxEntries bounds how many of the most recent records are considered.
// Callers fetch at most this many records.
const MaxEntries = 100

// Current returns the number of consecutive calendar days, ending at the day of
// the most recent record, on which at least one record was created.
//
// Logic:
//   - Only the MaxEntries most recent timestamps are considered
//   - If the most recent record is older than yesterday, the streak is broken (0)
//   - Otherwise walk backward one day at a time from the most recent record's day
//     and stop at the first day without a record
//
// A record yesterday and none today still counts: the streak stays alive until
// the end of today.
func Current(createdAt []time.Time, now time.Time, cal calendar.Calendar) int {
	if len(createdAt) == 0 {
		return 0
	}

	// Newest first, without mutating the caller's slice
	recent := slices.Clone(createdAt)
	slices.SortFunc(recent, func(a, b time.Time) int { return b.Compare(a) })
	if len(recent) > MaxEntries {
		recent = recent[:MaxEntries]
	}

	days := make(map[calendar.Day]struct{}, len(recent))
	for _, t := range recent {
		days[cal.DayOf(t)] = struct{}{}
	}

	last := cal.DayOf(recent[0])
	if cal.DayOf(now).Sub(last) > 1 {
		return 0
	}

	count := 0
	for day := last; ; day = day.AddDays(-1) {
		if _, ok := days[day]; !ok {
			break
		}
		count++
	}
	return count
}
