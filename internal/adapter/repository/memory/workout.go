package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// WorkoutRepository implements domain.WorkoutRepository.
// Logs are kept in insertion order so that creation-order lookups are stable.
type WorkoutRepository struct{ s *Store }

func cloneLog(l domain.ExerciseLog) domain.ExerciseLog {
	l.Entries = slices.Clone(l.Entries)
	if l.Entries == nil {
		l.Entries = []domain.SetEntry{}
	}
	return l
}

// exerciseWithLogs must be called with the lock held
func (r *WorkoutRepository) exerciseWithLogs(e domain.TemplateExercise) domain.TemplateExercise {
	e.Logs = []domain.ExerciseLog{}
	for _, l := range r.s.logs {
		if l.ExerciseID == e.ID {
			e.Logs = append(e.Logs, cloneLog(l))
		}
	}
	slices.SortStableFunc(e.Logs, func(a, b domain.ExerciseLog) int {
		return b.Date.Compare(a.Date)
	})
	return e
}

// templateWithExercises must be called with the lock held
func (r *WorkoutRepository) templateWithExercises(t domain.WorkoutTemplate) *domain.WorkoutTemplate {
	t.Exercises = []domain.TemplateExercise{}
	for _, e := range r.s.exercises {
		if e.TemplateID == t.ID {
			t.Exercises = append(t.Exercises, r.exerciseWithLogs(e))
		}
	}
	slices.SortFunc(t.Exercises, func(a, b domain.TemplateExercise) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), compareID(a.ID, b.ID))
	})
	return &t
}

// ListTemplates retrieves all templates with their exercises and logs
func (r *WorkoutRepository) ListTemplates(_ context.Context) ([]*domain.WorkoutTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.WorkoutTemplate, 0, len(r.s.templates))
	for _, t := range r.s.templates {
		out = append(out, r.templateWithExercises(t))
	}
	slices.SortFunc(out, func(a, b *domain.WorkoutTemplate) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), a.CreatedAt.Compare(b.CreatedAt), compareID(a.ID, b.ID))
	})
	return out, nil
}

func (r *WorkoutRepository) GetTemplate(_ context.Context, id uuid.UUID) (*domain.WorkoutTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.templates[id]
	if !ok {
		return nil, domain.NotFound("workout template", id)
	}
	return r.templateWithExercises(t), nil
}

// CreateTemplate stores the template along with any exercises it carries
func (r *WorkoutRepository) CreateTemplate(_ context.Context, template *domain.WorkoutTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range template.Exercises {
		e.TemplateID = template.ID
		e.Logs = nil
		r.s.exercises[e.ID] = e
	}
	t := *template
	t.Exercises = nil
	r.s.templates[t.ID] = t
	return nil
}

// DeleteTemplate removes the template with its exercises and their logs
func (r *WorkoutRepository) DeleteTemplate(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.templates[id]; !ok {
		return domain.NotFound("workout template", id)
	}
	for exerciseID, e := range r.s.exercises {
		if e.TemplateID == id {
			r.deleteExercise(exerciseID)
		}
	}
	delete(r.s.templates, id)
	return nil
}

func (r *WorkoutRepository) GetExercise(_ context.Context, id uuid.UUID) (*domain.TemplateExercise, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.exercises[id]
	if !ok {
		return nil, domain.NotFound("exercise", id)
	}
	e = r.exerciseWithLogs(e)
	return &e, nil
}

func (r *WorkoutRepository) AddExercise(_ context.Context, exercise *domain.TemplateExercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.templates[exercise.TemplateID]; !ok {
		return domain.NotFound("workout template", exercise.TemplateID)
	}
	e := *exercise
	e.Logs = nil
	r.s.exercises[e.ID] = e
	return nil
}

// DeleteExercise removes the exercise with its logs
func (r *WorkoutRepository) DeleteExercise(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.exercises[id]; !ok {
		return domain.NotFound("exercise", id)
	}
	r.deleteExercise(id)
	return nil
}

// deleteExercise must be called with the write lock held
func (r *WorkoutRepository) deleteExercise(id uuid.UUID) {
	r.s.logs = slices.DeleteFunc(r.s.logs, func(l domain.ExerciseLog) bool {
		return l.ExerciseID == id
	})
	delete(r.s.exercises, id)
}

// UpsertLog inserts the log or overwrites the log of the same exercise and day
func (r *WorkoutRepository) UpsertLog(_ context.Context, log *domain.ExerciseLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.exercises[log.ExerciseID]; !ok {
		return domain.NotFound("exercise", log.ExerciseID)
	}

	for i := range r.s.logs {
		existing := &r.s.logs[i]
		if existing.ExerciseID != log.ExerciseID || !existing.Date.Equal(log.Date) {
			continue
		}
		existing.Entries = slices.Clone(log.Entries)
		existing.Notes = log.Notes
		existing.UpdatedAt = log.UpdatedAt

		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
		return nil
	}

	r.s.logs = append(r.s.logs, cloneLog(*log))
	return nil
}

// ListLogs retrieves at most limit logs of an exercise, newest date first
func (r *WorkoutRepository) ListLogs(_ context.Context, exerciseID uuid.UUID, limit int) ([]*domain.ExerciseLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.ExerciseLog, 0)
	for _, l := range r.s.logs {
		if l.ExerciseID == exerciseID {
			c := cloneLog(l)
			out = append(out, &c)
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.ExerciseLog) int {
		return b.Date.Compare(a.Date)
	})
	return truncate(out, limit), nil
}

// ListLogsByExerciseName retrieves logs of every exercise named name, most recently created first
func (r *WorkoutRepository) ListLogsByExerciseName(_ context.Context, name string, limit int) ([]*domain.ExerciseLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.ExerciseLog, 0)
	for _, l := range r.s.logs {
		if e, ok := r.s.exercises[l.ExerciseID]; ok && e.Name == name {
			c := cloneLog(l)
			out = append(out, &c)
		}
	}
	// later inserts first on equal creation times
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b *domain.ExerciseLog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(out, limit), nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
