package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/duedate"
)

// Filter selects which tasks List returns
type Filter string

const (
	FilterAll       Filter = "all"
	FilterToday     Filter = "today"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a request value to a Filter. Empty means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(s)); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterToday, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown task filter %q", domain.ErrInvalidInput, s)
	}
}

// TodayCounts summarises the day's tasks
type TodayCounts struct {
	Pending        int `json:"pending"`
	CompletedToday int `json:"completed"`
}

// CreateInput holds the fields of a new task
type CreateInput struct {
	Title    string     `json:"title"`
	Notes    *string    `json:"notes"`
	DueDate  *time.Time `json:"dueDate"`
	Priority int        `json:"priority"`
}

// Patch holds the fields to change on an existing task. Nil fields are left as they are.
type Patch struct {
	Title        *string            `json:"title"`
	Notes        *string            `json:"notes"` // empty string clears
	Status       *domain.TaskStatus `json:"status"`
	Priority     *int               `json:"priority"`
	DueDate      *time.Time         `json:"dueDate"`
	ClearDueDate bool               `json:"clearDueDate"`
}

// TaskService handles task operations
type TaskService struct {
	TaskRepo domain.TaskRepository
	Calendar calendar.Calendar
	Now      func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(taskRepo domain.TaskRepository, cal calendar.Calendar) *TaskService {
	return &TaskService{
		TaskRepo: taskRepo,
		Calendar: cal,
		Now:      time.Now,
	}
}

// List returns the tasks matching filter in display order, each with its urgency bucket.
// Logic:
//   - today: pending tasks due today or without a due date
//   - completed: completed tasks
//   - all: every task
func (s *TaskService) List(ctx context.Context, filter Filter) ([]duedate.ClassifiedTask, error) {
	tasks, err := s.TaskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := s.Now()
	selected := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if s.matches(t, filter, now) {
			selected = append(selected, t)
		}
	}

	return duedate.Sort(selected, now, s.Calendar), nil
}

func (s *TaskService) matches(t *domain.Task, filter Filter, now time.Time) bool {
	switch filter {
	case FilterToday:
		return !t.IsCompleted() && s.dueTodayOrUndated(t, now)
	case FilterCompleted:
		return t.IsCompleted()
	default:
		return true
	}
}

func (s *TaskService) dueTodayOrUndated(t *domain.Task, now time.Time) bool {
	return t.DueDate == nil || s.Calendar.DaysBetween(now, *t.DueDate) == 0
}

// Counts returns the pending tasks for today and the tasks completed today.
// A task counts as completed today when its last update happened today.
func (s *TaskService) Counts(ctx context.Context) (*TodayCounts, error) {
	tasks, err := s.TaskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := s.Now()
	counts := &TodayCounts{}
	for _, t := range tasks {
		switch {
		case !t.IsCompleted() && s.dueTodayOrUndated(t, now):
			counts.Pending++
		case t.IsCompleted() && s.Calendar.DaysBetween(now, t.UpdatedAt) == 0:
			counts.CompletedToday++
		}
	}
	return counts, nil
}

// Get returns a single task with its urgency bucket
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*duedate.ClassifiedTask, error) {
	t, err := s.TaskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.classified(t), nil
}

// Create validates and stores a new pending task
func (s *TaskService) Create(ctx context.Context, input CreateInput) (*duedate.ClassifiedTask, error) {
	now := s.Now()
	t := &domain.Task{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(input.Title),
		Notes:     domain.TrimOptional(input.Notes),
		DueDate:   input.DueDate,
		Priority:  input.Priority,
		Status:    domain.TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if err := s.TaskRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return s.classified(t), nil
}

// Update applies patch to the task identified by id
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, patch Patch) (*duedate.ClassifiedTask, error) {
	t, err := s.TaskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Notes != nil {
		t.Notes = domain.TrimOptional(patch.Notes)
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	switch {
	case patch.ClearDueDate:
		t.DueDate = nil
	case patch.DueDate != nil:
		t.DueDate = patch.DueDate
	}
	t.UpdatedAt = s.Now()

	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.TaskRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.classified(t), nil
}

// Toggle flips the task between pending and completed
func (s *TaskService) Toggle(ctx context.Context, id uuid.UUID) (*duedate.ClassifiedTask, error) {
	t, err := s.TaskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.ToggleStatus()
	t.UpdatedAt = s.Now()

	if err := s.TaskRepo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.classified(t), nil
}

// Delete removes the task identified by id
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.TaskRepo.Delete(ctx, id)
}

func (s *TaskService) classified(t *domain.Task) *duedate.ClassifiedTask {
	return &duedate.ClassifiedTask{
		Task:    t,
		Urgency: duedate.Classify(t.DueDate, s.Now(), s.Calendar),
	}
}
