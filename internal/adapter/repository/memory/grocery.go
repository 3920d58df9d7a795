package memory

import (
	"cmp"
	"context"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// GroceryRepository implements domain.GroceryRepository
type GroceryRepository struct{ s *Store }

// List retrieves items, unchecked first, then by category, then newest first
func (r *GroceryRepository) List(_ context.Context) ([]*domain.GroceryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.groceries, same[domain.GroceryItem], func(a, b *domain.GroceryItem) int {
		return cmp.Or(
			-compareBool(a.IsChecked, b.IsChecked),
			compareOptional(a.Category, b.Category),
			b.CreatedAt.Compare(a.CreatedAt),
			compareID(a.ID, b.ID),
		)
	}), nil
}

func (r *GroceryRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.GroceryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.groceries[id]
	if !ok {
		return nil, domain.NotFound("grocery item", id)
	}
	return &item, nil
}

func (r *GroceryRepository) Create(_ context.Context, item *domain.GroceryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.groceries[item.ID] = *item
	return nil
}

func (r *GroceryRepository) Update(_ context.Context, item *domain.GroceryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groceries[item.ID]; !ok {
		return domain.NotFound("grocery item", item.ID)
	}
	r.s.groceries[item.ID] = *item
	return nil
}

func (r *GroceryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groceries[id]; !ok {
		return domain.NotFound("grocery item", id)
	}
	delete(r.s.groceries, id)
	return nil
}

// DeleteChecked removes every checked item
func (r *GroceryRepository) DeleteChecked(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	removed := 0
	for id, item := range r.s.groceries {
		if item.IsChecked {
			delete(r.s.groceries, id)
			removed++
		}
	}
	return removed, nil
}
