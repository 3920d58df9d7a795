package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// Input holds the fields of a goal. On update, nil fields are left unchanged.
type Input struct {
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	Type            *domain.GoalType   `json:"type"`
	Status          *domain.GoalStatus `json:"status"`
	Progress        *int               `json:"progress"`
	TargetDate      *time.Time         `json:"targetDate"`
	ClearTargetDate bool               `json:"clearTargetDate"`
}

// Stats counts goals by status
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// GoalService handles goal operations
type GoalService struct {
	GoalRepo domain.GoalRepository
	Now      func() time.Time
}

// NewGoalService creates a new GoalService instance
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{
		GoalRepo: goalRepo,
		Now:      time.Now,
	}
}

// List returns goals of the given type, or all goals when goalType is empty
func (s *GoalService) List(ctx context.Context, goalType domain.GoalType) ([]*domain.Goal, error) {
	goals, err := s.GoalRepo.List(ctx, goalType)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// Stats counts every goal, the active ones and the completed ones
func (s *GoalService) Stats(ctx context.Context) (*Stats, error) {
	goals, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case domain.GoalStatusActive:
			stats.Active++
		case domain.GoalStatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

// Create stores a new active goal. Type defaults to short.
func (s *GoalService) Create(ctx context.Context, input Input) (*domain.Goal, error) {
	now := s.Now()
	goal := &domain.Goal{
		ID:        uuid.New(),
		Type:      domain.GoalTypeShort,
		Status:    domain.GoalStatusActive,
		CreatedAt: now,
	}
	apply(goal, input)
	goal.UpdatedAt = now

	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if err := s.GoalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

// Update changes the given fields of a goal. This is the only way to pause a goal.
func (s *GoalService) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Goal, error) {
	goal, err := s.GoalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(goal, input)
	goal.UpdatedAt = s.Now()

	if err := goal.Validate(); err != nil {
		return nil, err
	}
	if err := s.GoalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

// Toggle switches the goal between completed and active.
// Completing sets progress to 100, re-activating keeps it.
func (s *GoalService) Toggle(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	goal, err := s.GoalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.ToggleComplete()
	goal.UpdatedAt = s.Now()

	if err := s.GoalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.GoalRepo.Delete(ctx, id)
}

func apply(g *domain.Goal, input Input) {
	if input.Title != nil {
		g.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		g.Description = domain.TrimOptional(input.Description)
	}
	if input.Type != nil {
		g.Type = *input.Type
	}
	if input.Status != nil {
		g.Status = *input.Status
	}
	if input.Progress != nil {
		g.Progress = *input.Progress
	}
	switch {
	case input.ClearTargetDate:
		g.TargetDate = nil
	case input.TargetDate != nil:
		g.TargetDate = input.TargetDate
	}
}
