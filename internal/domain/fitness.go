package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutTemplate is a named, ordered list of exercises (e.g. "PUSH DAY")
type WorkoutTemplate struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Order     int                `json:"order"`
	Exercises []TemplateExercise `json:"exercises"`
	CreatedAt time.Time          `json:"createdAt"`
}

// TemplateExercise belongs to a WorkoutTemplate and owns its ExerciseLogs.
// Deleting the template deletes its exercises, deleting an exercise deletes its logs.
type TemplateExercise struct {
	ID         uuid.UUID     `json:"id"`
	TemplateID uuid.UUID     `json:"templateId"`
	Name       string        `json:"name"`
	Sets       *string       `json:"sets"`     // e.g. "2 Working Sets"
	RepRange   *string       `json:"repRange"` // e.g. "6-8"
	Order      int           `json:"order"`
	Logs       []ExerciseLog `json:"logs"`
}

// SetEntry is a single performed set
type SetEntry struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// ExerciseLog records the sets performed for an exercise on one calendar day.
// There is at most one log per exercise per day: logging again overwrites.
type ExerciseLog struct {
	ID         uuid.UUID  `json:"id"`
	ExerciseID uuid.UUID  `json:"exerciseId"`
	Date       time.Time  `json:"date"` // start of day in the deployment timezone
	Entries    []SetEntry `json:"entries"`
	Notes      *string    `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Validate ensures the template adheres to domain rules
func (t *WorkoutTemplate) Validate() error {
	if err := checkLength("template name", t.Name, 1, 100); err != nil {
		return err
	}
	if t.Order < 0 {
		return invalid("template order must not be negative")
	}
	return nil
}

// Validate ensures the exercise adheres to domain rules
func (e *TemplateExercise) Validate() error {
	if e.TemplateID == uuid.Nil {
		return invalid("exercise must reference a template")
	}
	if err := checkLength("exercise name", e.Name, 1, 100); err != nil {
		return err
	}
	if err := checkOptional("sets", e.Sets, 50); err != nil {
		return err
	}
	return checkOptional("rep range", e.RepRange, 50)
}

// Validate ensures the log adheres to domain rules
func (l *ExerciseLog) Validate() error {
	if l.ExerciseID == uuid.Nil {
		return invalid("log must reference an exercise")
	}
	if len(l.Entries) == 0 || len(l.Entries) > 20 {
		return invalid("log must have between 1 and 20 sets")
	}
	for _, entry := range l.Entries {
		if entry.Weight < 0 {
			return invalid("set weight must not be negative")
		}
		if entry.Reps < 0 {
			return invalid("set reps must not be negative")
		}
	}
	return checkOptional("notes", l.Notes, 500)
}
