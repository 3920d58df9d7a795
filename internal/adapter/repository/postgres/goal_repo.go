package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

const goalColumns = `id, title, description, type, status, progress, target_date, created_at, updated_at`

func scanGoal(row scanner) (*domain.Goal, error) {
	var g domain.Goal
	var description sql.NullString
	var targetDate sql.NullTime

	if err := row.Scan(
		&g.ID,
		&g.Title,
		&description,
		&g.Type,
		&g.Status,
		&g.Progress,
		&targetDate,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.Description = nullString(description)
	g.TargetDate = nullTime(targetDate)
	return &g, nil
}

// List retrieves goals ordered by status then newest first.
// If goalType is empty, returns all goals.
func (r *goalRepository) List(ctx context.Context, goalType domain.GoalType) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals`
	args := []interface{}{}
	if goalType != "" {
		query += ` WHERE type = $1`
		args = append(args, string(goalType))
	}
	query += ` ORDER BY status COLLATE "C", created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return collect(rows, scanGoal)
}

// GetByID retrieves a goal by its ID
func (r *goalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	g, err := scanGoal(r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "goal", id, "get goal by ID")
	}
	return g, nil
}

// Create creates a new goal
func (r *goalRepository) Create(ctx context.Context, g *domain.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		string(g.Type),
		string(g.Status),
		g.Progress,
		g.TargetDate,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the goal
func (r *goalRepository) Update(ctx context.Context, g *domain.Goal) error {
	query := `
		UPDATE goals
		SET title = $2, description = $3, type = $4, status = $5, progress = $6, target_date = $7, updated_at = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		string(g.Type),
		string(g.Status),
		g.Progress,
		g.TargetDate,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return expectAffected(res, "goal", g.ID)
}

// Delete removes a goal
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return expectAffected(res, "goal", id)
}
