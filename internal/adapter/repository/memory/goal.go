package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// GoalRepository implements domain.GoalRepository
type GoalRepository struct{ s *Store }

// List retrieves goals ordered by status then newest first
func (r *GoalRepository) List(_ context.Context, goalType domain.GoalType) ([]*domain.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.goals, same[domain.Goal], func(a, b *domain.Goal) int {
		return cmp.Or(cmp.Compare(a.Status, b.Status), b.CreatedAt.Compare(a.CreatedAt), compareID(a.ID, b.ID))
	})
	if goalType == "" {
		return all, nil
	}

	out := make([]*domain.Goal, 0, len(all))
	for _, g := range all {
		if g.Type == goalType {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GoalRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.goals[id]
	if !ok {
		return nil, domain.NotFound("goal", id)
	}
	return &g, nil
}

func (r *GoalRepository) Create(_ context.Context, goal *domain.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) Update(_ context.Context, goal *domain.Goal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.goals[goal.ID]; !ok {
		return domain.NotFound("goal", goal.ID)
	}
	r.s.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.goals[id]; !ok {
		return domain.NotFound("goal", id)
	}
	delete(r.s.goals, id)
	return nil
}
