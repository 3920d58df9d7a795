package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// ideaRepository implements domain.IdeaRepository
type ideaRepository struct {
	db *DB
}

// NewIdeaRepository creates a new creative idea repository
func NewIdeaRepository(db *DB) domain.IdeaRepository {
	return &ideaRepository{db: db}
}

const ideaColumns = `id, title, content, category, tags, is_pinned, created_at, updated_at`

func scanIdea(row scanner) (*domain.CreativeIdea, error) {
	var idea domain.CreativeIdea
	var content, category sql.NullString

	if err := row.Scan(
		&idea.ID,
		&idea.Title,
		&content,
		&category,
		pq.Array(&idea.Tags),
		&idea.IsPinned,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	); err != nil {
		return nil, err
	}
	idea.Content = nullString(content)
	idea.Category = nullString(category)
	idea.Tags = nonNil(idea.Tags)
	return &idea, nil
}

// List retrieves ideas, pinned first, then newest first.
// If category is empty, returns all ideas.
func (r *ideaRepository) List(ctx context.Context, category string) ([]*domain.CreativeIdea, error) {
	query := `SELECT ` + ideaColumns + ` FROM creative_ideas`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY is_pinned DESC, created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list creative ideas: %w", err)
	}
	return collect(rows, scanIdea)
}

// GetByID retrieves an idea by its ID
func (r *ideaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreativeIdea, error) {
	idea, err := scanIdea(r.db.QueryRowContext(ctx, `SELECT `+ideaColumns+` FROM creative_ideas WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "idea", id, "get idea by ID")
	}
	return idea, nil
}

// Create creates a new idea
func (r *ideaRepository) Create(ctx context.Context, idea *domain.CreativeIdea) error {
	query := `
		INSERT INTO creative_ideas (` + ideaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		idea.ID,
		idea.Title,
		idea.Content,
		idea.Category,
		pq.Array(nonNil(idea.Tags)),
		idea.IsPinned,
		idea.CreatedAt,
		idea.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the idea
func (r *ideaRepository) Update(ctx context.Context, idea *domain.CreativeIdea) error {
	query := `
		UPDATE creative_ideas
		SET title = $2, content = $3, category = $4, tags = $5, is_pinned = $6, updated_at = $7
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		idea.ID,
		idea.Title,
		idea.Content,
		idea.Category,
		pq.Array(nonNil(idea.Tags)),
		idea.IsPinned,
		idea.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}
	return expectAffected(res, "idea", idea.ID)
}

// Delete removes an idea
func (r *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM creative_ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return expectAffected(res, "idea", id)
}
