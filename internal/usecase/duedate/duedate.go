// Package duedate classifies task due dates into urgency buckets and orders
// task lists for display.
package duedate

import (
	"slices"
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

// Urgency is the display bucket of a due date relative to today
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyToday    Urgency = "today"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencyThisWeek Urgency = "this-week"
	UrgencyLater    Urgency = "later"
	UrgencyNone     Urgency = "none"
)

// Classify returns the urgency bucket of a due date relative to the day of now.
//
//	days < 0   -> overdue
//	days == 0  -> today
//	days == 1  -> tomorrow
//	days 2..7  -> this-week
//	days > 7   -> later
//	no date    -> none
func Classify(due *time.Time, now time.Time, cal calendar.Calendar) Urgency {
	if due == nil {
		return UrgencyNone
	}

	days := cal.DaysBetween(now, *due)
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days == 1:
		return UrgencyTomorrow
	case days <= 7:
		return UrgencyThisWeek
	default:
		return UrgencyLater
	}
}

// ClassifiedTask is a task together with its urgency bucket
type ClassifiedTask struct {
	*domain.Task
	Urgency Urgency `json:"urgency"`
}

// Sort returns the tasks in display order, each with its urgency bucket.
//
// Order (ties fall through to the next key):
//  1. Pending tasks before completed tasks
//  2. Among pending tasks, overdue tasks first
//  3. Among pending tasks, ascending due date; tasks with a due date before tasks without
//  4. Descending priority
//
// The sort is stable and depends only on status, due date and priority.
// The input slice is not modified.
func Sort(tasks []*domain.Task, now time.Time, cal calendar.Calendar) []ClassifiedTask {
	out := make([]ClassifiedTask, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, ClassifiedTask{Task: task, Urgency: Classify(task.DueDate, now, cal)})
	}

	slices.SortStableFunc(out, compare)
	return out
}

// compare orders two classified tasks according to Sort's keys
func compare(a, b ClassifiedTask) int {
	// 1. Pending before completed
	if a.IsCompleted() != b.IsCompleted() {
		if a.IsCompleted() {
			return 1
		}
		return -1
	}

	if !a.IsCompleted() {
		// 2. Overdue first
		aOverdue, bOverdue := a.Urgency == UrgencyOverdue, b.Urgency == UrgencyOverdue
		if aOverdue != bOverdue {
			if aOverdue {
				return -1
			}
			return 1
		}

		// 3. Ascending due date, undated last
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return -1
		case a.DueDate == nil && b.DueDate != nil:
			return 1
		case a.DueDate != nil && b.DueDate != nil:
			if c := a.DueDate.Compare(*b.DueDate); c != 0 {
				return c
			}
		}
	}

	// 4. Higher priority first
	return b.Priority - a.Priority
}
