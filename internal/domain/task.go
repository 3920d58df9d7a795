package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task priorities, 0 means no priority
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Task represents a to-do item
type Task struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Notes     *string    `json:"notes"`
	DueDate   *time.Time `json:"dueDate"`
	Priority  int        `json:"priority"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate ensures the task adheres to domain rules
func (t *Task) Validate() error {
	if err := checkLength("title", t.Title, 1, 500); err != nil {
		return err
	}
	if err := checkOptional("notes", t.Notes, 2000); err != nil {
		return err
	}
	if t.Priority < PriorityNone || t.Priority > PriorityHigh {
		return invalid("priority must be between %d and %d", PriorityNone, PriorityHigh)
	}
	if t.Status != TaskStatusPending && t.Status != TaskStatusCompleted {
		return invalid("status must be pending or completed")
	}
	return nil
}

// IsCompleted reports whether the task is done
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// ToggleStatus flips the task between pending and completed.
// Applying it twice restores the original status.
func (t *Task) ToggleStatus() {
	if t.Status == TaskStatusCompleted {
		t.Status = TaskStatusPending
		return
	}
	t.Status = TaskStatusCompleted
}
