// Package overload finds previous performances of an exercise so a new log
// can be pre-filled (progressive overload).
package overload

import (
	"slices"
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// Performance is a previously recorded performance of an exercise
type Performance struct {
	Date  time.Time         `json:"date"`
	Sets  []domain.SetEntry `json:"sets"`
	Notes *string           `json:"notes"`
}

// Latest returns the most recently created log among logs as a Performance,
// or nil when there are none. Creation order decides, not the log date: a log
// back-filled for last week after today's session is the latest one.
// logs are in insertion order, so when creation times tie the later element wins.
func Latest(logs []*domain.ExerciseLog) *Performance {
	var latest *domain.ExerciseLog
	for _, log := range logs {
		if log == nil {
			continue
		}
		if latest == nil || !log.CreatedAt.Before(latest.CreatedAt) {
			latest = log
		}
	}
	if latest == nil {
		return nil
	}
	p := toPerformance(latest)
	return &p
}

// History returns at most limit performances, most recently created first.
// logs are in insertion order; on equal creation times the later element
// comes first. A limit <= 0 means no limit.
func History(logs []*domain.ExerciseLog, limit int) []Performance {
	ordered := make([]*domain.ExerciseLog, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i] != nil {
			ordered = append(ordered, logs[i])
		}
	}
	slices.SortStableFunc(ordered, func(a, b *domain.ExerciseLog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	out := make([]Performance, 0, len(ordered))
	for _, log := range ordered {
		out = append(out, toPerformance(log))
	}
	return out
}

// Prefill returns the sets to pre-populate a new entry with: a copy of the
// latest performance's sets, or a single empty set when there is none.
func Prefill(latest *Performance) []domain.SetEntry {
	if latest == nil || len(latest.Sets) == 0 {
		return []domain.SetEntry{{Weight: 0, Reps: 0}}
	}
	return slices.Clone(latest.Sets)
}

func toPerformance(log *domain.ExerciseLog) Performance {
	return Performance{
		Date:  log.Date,
		Sets:  slices.Clone(log.Entries),
		Notes: log.Notes,
	}
}
