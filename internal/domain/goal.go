package domain

import (
	"time"

	"github.com/google/uuid"
)

// GoalType distinguishes short-term and long-term goals
type GoalType string

const (
	GoalTypeShort GoalType = "short"
	GoalTypeLong  GoalType = "long"
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal is a tracked personal goal with a 0-100 progress value
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        GoalType   `json:"type"`
	Status      GoalStatus `json:"status"`
	Progress    int        `json:"progress"`
	TargetDate  *time.Time `json:"targetDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if err := checkLength("title", g.Title, 1, 200); err != nil {
		return err
	}
	if err := checkOptional("description", g.Description, 2000); err != nil {
		return err
	}
	if g.Type != GoalTypeShort && g.Type != GoalTypeLong {
		return invalid("goal type must be short or long")
	}
	switch g.Status {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused:
	default:
		return invalid("goal status must be active, completed or paused")
	}
	if g.Progress < 0 || g.Progress > 100 {
		return invalid("progress must be between 0 and 100")
	}
	return nil
}

// ToggleComplete switches a goal between completed and active.
//
// Completing forces progress to 100. Re-activating keeps the progress as it is,
// so a goal toggled twice ends up active at 100. A paused goal is completed by
// the toggle; paused is only reachable through an explicit edit.
func (g *Goal) ToggleComplete() {
	if g.Status == GoalStatusCompleted {
		g.Status = GoalStatusActive
		return
	}
	g.Status = GoalStatusCompleted
	g.Progress = 100
}
