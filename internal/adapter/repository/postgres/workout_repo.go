package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// workoutRepository implements domain.WorkoutRepository
type workoutRepository struct {
	db *DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *DB) domain.WorkoutRepository {
	return &workoutRepository{db: db}
}

const (
	templateColumns = `id, name, sort_order, created_at`
	exerciseColumns = `id, template_id, name, sets, rep_range, sort_order`
	logColumns      = `l.id, l.exercise_id, l.date, l.entries, l.notes, l.created_at, l.updated_at`
)

func scanTemplate(row scanner) (*domain.WorkoutTemplate, error) {
	var t domain.WorkoutTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.Order, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Exercises = []domain.TemplateExercise{}
	return &t, nil
}

func scanExercise(row scanner) (*domain.TemplateExercise, error) {
	var e domain.TemplateExercise
	var sets, repRange sql.NullString

	if err := row.Scan(&e.ID, &e.TemplateID, &e.Name, &sets, &repRange, &e.Order); err != nil {
		return nil, err
	}
	e.Sets = nullString(sets)
	e.RepRange = nullString(repRange)
	e.Logs = []domain.ExerciseLog{}
	return &e, nil
}

func scanLog(row scanner) (*domain.ExerciseLog, error) {
	var l domain.ExerciseLog
	var entries []byte
	var notes sql.NullString

	if err := row.Scan(&l.ID, &l.ExerciseID, &l.Date, &entries, &notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(entries, &l.Entries); err != nil {
		return nil, fmt.Errorf("failed to parse exercise log entries: %w", err)
	}
	if l.Entries == nil {
		l.Entries = []domain.SetEntry{}
	}
	l.Notes = nullString(notes)
	return &l, nil
}

// ListTemplates retrieves all templates with their exercises and logs.
// The whole tree is read in three queries and assembled in memory.
func (r *workoutRepository) ListTemplates(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM workout_templates ORDER BY sort_order, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout templates: %w", err)
	}
	templates, err := collect(rows, scanTemplate)
	if err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM template_exercises ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list template exercises: %w", err)
	}
	exercises, err := collect(rows, scanExercise)
	if err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT `+logColumns+` FROM exercise_logs l ORDER BY l.date DESC, l.seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	logs, err := collect(rows, scanLog)
	if err != nil {
		return nil, err
	}

	return assemble(templates, exercises, logs), nil
}

// assemble nests logs into exercises and exercises into templates, keeping
// the order of each input slice
func assemble(templates []*domain.WorkoutTemplate, exercises []*domain.TemplateExercise, logs []*domain.ExerciseLog) []*domain.WorkoutTemplate {
	logsByExercise := make(map[uuid.UUID][]domain.ExerciseLog)
	for _, l := range logs {
		logsByExercise[l.ExerciseID] = append(logsByExercise[l.ExerciseID], *l)
	}

	exercisesByTemplate := make(map[uuid.UUID][]domain.TemplateExercise)
	for _, e := range exercises {
		if l, ok := logsByExercise[e.ID]; ok {
			e.Logs = l
		}
		exercisesByTemplate[e.TemplateID] = append(exercisesByTemplate[e.TemplateID], *e)
	}

	for _, t := range templates {
		if e, ok := exercisesByTemplate[t.ID]; ok {
			t.Exercises = e
		}
	}
	return templates
}

// GetTemplate retrieves a template with its exercises and logs
func (r *workoutRepository) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error) {
	template, err := scanTemplate(r.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM workout_templates WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "workout template", id, "get workout template by ID")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+exerciseColumns+` FROM template_exercises WHERE template_id = $1 ORDER BY sort_order, id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list template exercises: %w", err)
	}
	exercises, err := collect(rows, scanExercise)
	if err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM exercise_logs l
		JOIN template_exercises e ON e.id = l.exercise_id
		WHERE e.template_id = $1
		ORDER BY l.date DESC, l.seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	logs, err := collect(rows, scanLog)
	if err != nil {
		return nil, err
	}

	return assemble([]*domain.WorkoutTemplate{template}, exercises, logs)[0], nil
}

// CreateTemplate creates the template and the exercises it carries in one transaction
func (r *workoutRepository) CreateTemplate(ctx context.Context, template *domain.WorkoutTemplate) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx,
		`INSERT INTO workout_templates (`+templateColumns+`) VALUES ($1, $2, $3, $4)`,
		template.ID, template.Name, template.Order, template.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout template: %w", err)
	}

	for _, e := range template.Exercises {
		_, err = dbTx.ExecContext(ctx,
			`INSERT INTO template_exercises (`+exerciseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, template.ID, e.Name, e.Sets, e.RepRange, e.Order,
		)
		if err != nil {
			return fmt.Errorf("failed to insert template exercise: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTemplate removes the template; exercises and logs cascade
func (r *workoutRepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout template: %w", err)
	}
	return expectAffected(res, "workout template", id)
}

// GetExercise retrieves an exercise with its logs
func (r *workoutRepository) GetExercise(ctx context.Context, id uuid.UUID) (*domain.TemplateExercise, error) {
	exercise, err := scanExercise(r.db.QueryRowContext(ctx,
		`SELECT `+exerciseColumns+` FROM template_exercises WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "exercise", id, "get exercise by ID")
	}

	logs, err := r.ListLogs(ctx, id, 0)
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		exercise.Logs = append(exercise.Logs, *l)
	}
	return exercise, nil
}

// AddExercise adds an exercise to an existing template
func (r *workoutRepository) AddExercise(ctx context.Context, exercise *domain.TemplateExercise) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO template_exercises (`+exerciseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		exercise.ID, exercise.TemplateID, exercise.Name, exercise.Sets, exercise.RepRange, exercise.Order,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("workout template", exercise.TemplateID)
		}
		return fmt.Errorf("failed to add exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes the exercise; its logs cascade
func (r *workoutRepository) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM template_exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	return expectAffected(res, "exercise", id)
}

// UpsertLog inserts the log or overwrites the entries and notes of the log
// of the same exercise and date
func (r *workoutRepository) UpsertLog(ctx context.Context, log *domain.ExerciseLog) error {
	entries := log.Entries
	if entries == nil {
		entries = []domain.SetEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode exercise log entries: %w", err)
	}

	query := `
		INSERT INTO exercise_logs (id, exercise_id, date, entries, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (exercise_id, date)
		DO UPDATE SET entries = EXCLUDED.entries, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		log.ID,
		log.ExerciseID,
		log.Date,
		payload,
		log.Notes,
		log.CreatedAt,
		log.UpdatedAt,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("exercise", log.ExerciseID)
		}
		return fmt.Errorf("failed to upsert exercise log: %w", err)
	}
	return nil
}

// ListLogs retrieves at most limit logs of an exercise, newest date first
func (r *workoutRepository) ListLogs(ctx context.Context, exerciseID uuid.UUID, limit int) ([]*domain.ExerciseLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM exercise_logs l
		WHERE l.exercise_id = $1
		ORDER BY l.date DESC, l.seq
		LIMIT $2
	`, exerciseID, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	return collect(rows, scanLog)
}

// ListLogsByExerciseName retrieves logs of every exercise named name, most
// recently created first. Equal creation times put the later insert first.
func (r *workoutRepository) ListLogsByExerciseName(ctx context.Context, name string, limit int) ([]*domain.ExerciseLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+logColumns+`
		FROM exercise_logs l
		JOIN template_exercises e ON e.id = l.exercise_id
		WHERE e.name = $1
		ORDER BY l.created_at DESC, l.seq DESC
		LIMIT $2
	`, name, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs by name: %w", err)
	}
	return collect(rows, scanLog)
}
