package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// IdeaRepository implements domain.IdeaRepository
type IdeaRepository struct{ s *Store }

func cloneIdea(i domain.CreativeIdea) domain.CreativeIdea {
	i.Tags = cloneStrings(i.Tags)
	return i
}

// List retrieves ideas, pinned first, then newest first
func (r *IdeaRepository) List(_ context.Context, category string) ([]*domain.CreativeIdea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.ideas, cloneIdea, func(a, b *domain.CreativeIdea) int {
		return cmp.Or(compareBool(a.IsPinned, b.IsPinned), b.CreatedAt.Compare(a.CreatedAt), compareID(a.ID, b.ID))
	})
	if category == "" {
		return all, nil
	}

	out := make([]*domain.CreativeIdea, 0, len(all))
	for _, idea := range all {
		if idea.Category != nil && *idea.Category == category {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (r *IdeaRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.CreativeIdea, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	idea, ok := r.s.ideas[id]
	if !ok {
		return nil, domain.NotFound("idea", id)
	}
	idea = cloneIdea(idea)
	return &idea, nil
}

func (r *IdeaRepository) Create(_ context.Context, idea *domain.CreativeIdea) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ideas[idea.ID] = cloneIdea(*idea)
	return nil
}

func (r *IdeaRepository) Update(_ context.Context, idea *domain.CreativeIdea) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ideas[idea.ID]; !ok {
		return domain.NotFound("idea", idea.ID)
	}
	r.s.ideas[idea.ID] = cloneIdea(*idea)
	return nil
}

func (r *IdeaRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.ideas[id]; !ok {
		return domain.NotFound("idea", id)
	}
	delete(r.s.ideas, id)
	return nil
}
