package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// dietRepository implements domain.DietRepository
type dietRepository struct {
	db *DB
}

// NewDietRepository creates a new diet repository
func NewDietRepository(db *DB) domain.DietRepository {
	return &dietRepository{db: db}
}

const dietLogColumns = `id, date, calories, protein, carbs, fat, fiber, water, notes, created_at, updated_at`

func scanDietLog(row scanner) (*domain.DietLog, error) {
	var l domain.DietLog
	var notes sql.NullString

	if err := row.Scan(
		&l.ID,
		&l.Date,
		&l.Calories,
		&l.Protein,
		&l.Carbs,
		&l.Fat,
		&l.Fiber,
		&l.Water,
		&notes,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.Notes = nullString(notes)
	return &l, nil
}

// GetLog retrieves the log of the given day
func (r *dietRepository) GetLog(ctx context.Context, date time.Time) (*domain.DietLog, error) {
	l, err := scanDietLog(r.db.QueryRowContext(ctx, `SELECT `+dietLogColumns+` FROM diet_logs WHERE date = $1`, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("diet log", date)
		}
		return nil, fmt.Errorf("failed to get diet log: %w", err)
	}
	return l, nil
}

// ListLogs retrieves logs dated at or after since, newest first
func (r *dietRepository) ListLogs(ctx context.Context, since time.Time) ([]*domain.DietLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dietLogColumns+` FROM diet_logs WHERE date >= $1 ORDER BY date DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet logs: %w", err)
	}
	return collect(rows, scanDietLog)
}

// UpsertLog inserts the log or overwrites the log of the same day
func (r *dietRepository) UpsertLog(ctx context.Context, l *domain.DietLog) error {
	query := `
		INSERT INTO diet_logs (` + dietLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date) DO UPDATE SET
			calories = EXCLUDED.calories,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat,
			fiber = EXCLUDED.fiber,
			water = EXCLUDED.water,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		l.ID,
		l.Date,
		l.Calories,
		l.Protein,
		l.Carbs,
		l.Fat,
		l.Fiber,
		l.Water,
		l.Notes,
		l.CreatedAt,
		l.UpdatedAt,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert diet log: %w", err)
	}
	return nil
}

// GetGoals retrieves the diet goals
func (r *dietRepository) GetGoals(ctx context.Context) (*domain.DietGoals, error) {
	query := `SELECT id, calories, protein, carbs, fat, fiber, water, updated_at FROM diet_goals LIMIT 1`

	var g domain.DietGoals
	err := r.db.QueryRowContext(ctx, query).Scan(
		&g.ID,
		&g.Calories,
		&g.Protein,
		&g.Carbs,
		&g.Fat,
		&g.Fiber,
		&g.Water,
		&g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("diet goals %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get diet goals: %w", err)
	}
	return &g, nil
}

// SaveGoals inserts or updates the single diet goals row
func (r *dietRepository) SaveGoals(ctx context.Context, g *domain.DietGoals) error {
	query := `
		INSERT INTO diet_goals (id, calories, protein, carbs, fat, fiber, water, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (singleton) DO UPDATE SET
			calories = EXCLUDED.calories,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat,
			fiber = EXCLUDED.fiber,
			water = EXCLUDED.water,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		g.ID,
		g.Calories,
		g.Protein,
		g.Carbs,
		g.Fat,
		g.Fiber,
		g.Water,
		g.UpdatedAt,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("failed to save diet goals: %w", err)
	}
	return nil
}

// supplementRepository implements domain.SupplementRepository
type supplementRepository struct {
	db *DB
}

// NewSupplementRepository creates a new supplement repository
func NewSupplementRepository(db *DB) domain.SupplementRepository {
	return &supplementRepository{db: db}
}

const supplementColumns = `id, name, dosage, frequency, time_of_day, notes, is_active, created_at, updated_at`

func scanSupplement(row scanner) (*domain.Supplement, error) {
	var s domain.Supplement
	var dosage, timeOfDay, notes sql.NullString

	if err := row.Scan(
		&s.ID,
		&s.Name,
		&dosage,
		&s.Frequency,
		&timeOfDay,
		&notes,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Dosage = nullString(dosage)
	s.TimeOfDay = nullString(timeOfDay)
	s.Notes = nullString(notes)
	return &s, nil
}

// List retrieves supplements, active first, then by time of day, then by name
func (r *supplementRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Supplement, error) {
	query := `SELECT ` + supplementColumns + ` FROM supplements`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY is_active DESC, time_of_day COLLATE "C" ASC NULLS LAST, name COLLATE "C", id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplements: %w", err)
	}
	return collect(rows, scanSupplement)
}

// GetByID retrieves a supplement by its ID
func (r *supplementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplement, error) {
	s, err := scanSupplement(r.db.QueryRowContext(ctx, `SELECT `+supplementColumns+` FROM supplements WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "supplement", id, "get supplement by ID")
	}
	return s, nil
}

// Create creates a new supplement
func (r *supplementRepository) Create(ctx context.Context, s *domain.Supplement) error {
	query := `
		INSERT INTO supplements (` + supplementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Dosage,
		s.Frequency,
		s.TimeOfDay,
		s.Notes,
		s.IsActive,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create supplement: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the supplement
func (r *supplementRepository) Update(ctx context.Context, s *domain.Supplement) error {
	query := `
		UPDATE supplements
		SET name = $2, dosage = $3, frequency = $4, time_of_day = $5, notes = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Dosage,
		s.Frequency,
		s.TimeOfDay,
		s.Notes,
		s.IsActive,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplement: %w", err)
	}
	return expectAffected(res, "supplement", s.ID)
}

// Delete removes a supplement
func (r *supplementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM supplements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplement: %w", err)
	}
	return expectAffected(res, "supplement", id)
}

// weightRepository implements domain.WeightRepository
type weightRepository struct {
	db *DB
}

// NewWeightRepository creates a new weight repository
func NewWeightRepository(db *DB) domain.WeightRepository {
	return &weightRepository{db: db}
}

const weightColumns = `id, date, weight, notes, created_at`

func scanWeight(row scanner) (*domain.WeightLog, error) {
	var w domain.WeightLog
	var notes sql.NullString

	if err := row.Scan(&w.ID, &w.Date, &w.Weight, &notes, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.Notes = nullString(notes)
	return &w, nil
}

// List retrieves logs dated at or after since, oldest first
func (r *weightRepository) List(ctx context.Context, since time.Time) ([]*domain.WeightLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+weightColumns+` FROM weight_logs WHERE date >= $1 ORDER BY date`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight logs: %w", err)
	}
	return collect(rows, scanWeight)
}

// Latest retrieves the most recent log
func (r *weightRepository) Latest(ctx context.Context) (*domain.WeightLog, error) {
	w, err := scanWeight(r.db.QueryRowContext(ctx,
		`SELECT `+weightColumns+` FROM weight_logs ORDER BY date DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("weight log %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest weight log: %w", err)
	}
	return w, nil
}

// Upsert inserts the log or overwrites the log of the same day
func (r *weightRepository) Upsert(ctx context.Context, w *domain.WeightLog) error {
	query := `
		INSERT INTO weight_logs (` + weightColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight, notes = EXCLUDED.notes
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, w.ID, w.Date, w.Weight, w.Notes, w.CreatedAt).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert weight log: %w", err)
	}
	return nil
}

// Delete removes a log
func (r *weightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weight_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete weight log: %w", err)
	}
	return expectAffected(res, "weight log", id)
}
