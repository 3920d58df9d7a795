package fitness

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/overload"
)

// DefaultHistoryLimit is the number of past performances returned when no limit is given
const DefaultHistoryLimit = 5

// ExerciseInput describes an exercise to add to a template
type ExerciseInput struct {
	Name     string  `json:"name"`
	Sets     *string `json:"sets"`
	RepRange *string `json:"repRange"`
}

// TemplateInput describes a new workout template
type TemplateInput struct {
	Name      string          `json:"name"`
	Exercises []ExerciseInput `json:"exercises"`
}

// LogInput records the sets performed for an exercise. A nil Date means today.
type LogInput struct {
	Date    *time.Time        `json:"date"`
	Entries []domain.SetEntry `json:"entries"`
	Notes   *string           `json:"notes"`
}

// FitnessService handles workout templates and exercise logging
type FitnessService struct {
	WorkoutRepo domain.WorkoutRepository
	Calendar    calendar.Calendar
	Now         func() time.Time
}

// NewFitnessService creates a new FitnessService instance
func NewFitnessService(workoutRepo domain.WorkoutRepository, cal calendar.Calendar) *FitnessService {
	return &FitnessService{
		WorkoutRepo: workoutRepo,
		Calendar:    cal,
		Now:         time.Now,
	}
}

// ListTemplates returns every template with its exercises and their logs
func (s *FitnessService) ListTemplates(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	templates, err := s.WorkoutRepo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout templates: %w", err)
	}
	return templates, nil
}

func (s *FitnessService) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error) {
	return s.WorkoutRepo.GetTemplate(ctx, id)
}

// CreateTemplate appends a new template after the existing ones.
// Its exercises keep the order they are given in.
func (s *FitnessService) CreateTemplate(ctx context.Context, input TemplateInput) (*domain.WorkoutTemplate, error) {
	existing, err := s.WorkoutRepo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout templates: %w", err)
	}

	template := &domain.WorkoutTemplate{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Order:     len(existing),
		Exercises: make([]domain.TemplateExercise, 0, len(input.Exercises)),
		CreatedAt: s.Now(),
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}

	for i, in := range input.Exercises {
		exercise := newExercise(template.ID, in, i)
		if err := exercise.Validate(); err != nil {
			return nil, err
		}
		template.Exercises = append(template.Exercises, *exercise)
	}

	if err := s.WorkoutRepo.CreateTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create workout template: %w", err)
	}
	return template, nil
}

// DeleteTemplate removes the template with its exercises and logs
func (s *FitnessService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.WorkoutRepo.DeleteTemplate(ctx, id)
}

// AddExercise appends an exercise at the end of the template
func (s *FitnessService) AddExercise(ctx context.Context, templateID uuid.UUID, input ExerciseInput) (*domain.TemplateExercise, error) {
	template, err := s.WorkoutRepo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	order := 0
	for _, e := range template.Exercises {
		if e.Order >= order {
			order = e.Order + 1
		}
	}

	exercise := newExercise(templateID, input, order)
	if err := exercise.Validate(); err != nil {
		return nil, err
	}
	if err := s.WorkoutRepo.AddExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to add exercise: %w", err)
	}
	return exercise, nil
}

// DeleteExercise removes the exercise with its logs
func (s *FitnessService) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	return s.WorkoutRepo.DeleteExercise(ctx, id)
}

// LogExercise records the sets of an exercise for a day.
// Logging the same exercise twice on one day overwrites the earlier entries.
func (s *FitnessService) LogExercise(ctx context.Context, exerciseID uuid.UUID, input LogInput) (*domain.ExerciseLog, error) {
	now := s.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	log := &domain.ExerciseLog{
		ID:         uuid.New(),
		ExerciseID: exerciseID,
		Date:       s.Calendar.StartOfDay(date),
		Entries:    input.Entries,
		Notes:      domain.TrimOptional(input.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.WorkoutRepo.UpsertLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to log exercise: %w", err)
	}
	return log, nil
}

// ExerciseLogs returns the most recent logs of one exercise, newest date first
func (s *FitnessService) ExerciseLogs(ctx context.Context, exerciseID uuid.UUID, limit int) ([]*domain.ExerciseLog, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	logs, err := s.WorkoutRepo.ListLogs(ctx, exerciseID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise logs: %w", err)
	}
	return logs, nil
}

// History returns the most recent performances of every exercise with this exact name
func (s *FitnessService) History(ctx context.Context, exerciseName string, limit int) ([]overload.Performance, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	logs, err := s.WorkoutRepo.ListLogsByExerciseName(ctx, exerciseName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise history: %w", err)
	}
	// the store returns newest first
	slices.Reverse(logs)
	return overload.History(logs, limit), nil
}

// LastPerformance returns the most recently created log for the exercise name,
// across all templates, or nil when it was never logged.
func (s *FitnessService) LastPerformance(ctx context.Context, exerciseName string) (*overload.Performance, error) {
	logs, err := s.WorkoutRepo.ListLogsByExerciseName(ctx, exerciseName, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to find last performance: %w", err)
	}
	slices.Reverse(logs)
	return overload.Latest(logs), nil
}

// Prefill returns the sets to pre-populate a new log of the exercise with
func (s *FitnessService) Prefill(ctx context.Context, exerciseName string) ([]domain.SetEntry, error) {
	last, err := s.LastPerformance(ctx, exerciseName)
	if err != nil {
		return nil, err
	}
	return overload.Prefill(last), nil
}

func newExercise(templateID uuid.UUID, in ExerciseInput, order int) *domain.TemplateExercise {
	return &domain.TemplateExercise{
		ID:         uuid.New(),
		TemplateID: templateID,
		Name:       strings.TrimSpace(in.Name),
		Sets:       domain.TrimOptional(in.Sets),
		RepRange:   domain.TrimOptional(in.RepRange),
		Order:      order,
		Logs:       []domain.ExerciseLog{},
	}
}
