package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// TaskRepository implements domain.TaskRepository
type TaskRepository struct{ s *Store }

// List retrieves all tasks, newest first
func (r *TaskRepository) List(_ context.Context) ([]*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.tasks, same[domain.Task], func(a, b *domain.Task) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareID(a.ID, b.ID))
	}), nil
}

func (r *TaskRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	task, ok := r.s.tasks[id]
	if !ok {
		return nil, domain.NotFound("task", id)
	}
	return &task, nil
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[task.ID]; !ok {
		return domain.NotFound("task", task.ID)
	}
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[id]; !ok {
		return domain.NotFound("task", id)
	}
	delete(r.s.tasks, id)
	return nil
}
