package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// taskRepository implements domain.TaskRepository
type taskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) domain.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, notes, due_date, priority, status, created_at, updated_at`

func scanTask(row scanner) (*domain.Task, error) {
	var task domain.Task
	var notes sql.NullString
	var dueDate sql.NullTime

	if err := row.Scan(
		&task.ID,
		&task.Title,
		&notes,
		&dueDate,
		&task.Priority,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.Notes = nullString(notes)
	task.DueDate = nullTime(dueDate)

	return &task, nil
}

// List retrieves all tasks, newest first
func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return collect(rows, scanTask)
}

// GetByID retrieves a task by its ID
func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "task", id, "get task by ID")
	}
	return task, nil
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Notes,
		task.DueDate,
		task.Priority,
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Update overwrites every mutable column of the task
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, notes = $3, due_date = $4, priority = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Notes,
		task.DueDate,
		task.Priority,
		string(task.Status),
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return expectAffected(res, "task", task.ID)
}

// Delete removes a task
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return expectAffected(res, "task", id)
}
