package grocery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// Input holds the fields of a grocery item. On update, nil fields are left unchanged.
type Input struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"` // empty string clears
	IsChecked *bool   `json:"isChecked"`
}

// Counts summarises the shopping list
type Counts struct {
	Total     int `json:"total"`
	Unchecked int `json:"unchecked"`
}

// GroceryService handles the shopping list
type GroceryService struct {
	GroceryRepo domain.GroceryRepository
	Now         func() time.Time
}

// NewGroceryService creates a new GroceryService instance
func NewGroceryService(groceryRepo domain.GroceryRepository) *GroceryService {
	return &GroceryService{
		GroceryRepo: groceryRepo,
		Now:         time.Now,
	}
}

// List returns items, unchecked first, then by category, then newest first
func (s *GroceryService) List(ctx context.Context) ([]*domain.GroceryItem, error) {
	items, err := s.GroceryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	return items, nil
}

func (s *GroceryService) Counts(ctx context.Context) (*Counts, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := &Counts{Total: len(items)}
	for _, item := range items {
		if !item.IsChecked {
			counts.Unchecked++
		}
	}
	return counts, nil
}

// Create adds an unchecked item
func (s *GroceryService) Create(ctx context.Context, input Input) (*domain.GroceryItem, error) {
	now := s.Now()
	item := &domain.GroceryItem{
		ID:        uuid.New(),
		CreatedAt: now,
	}
	apply(item, input)
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.GroceryRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create grocery item: %w", err)
	}
	return item, nil
}

func (s *GroceryService) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.GroceryItem, error) {
	item, err := s.GroceryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(item, input)
	return s.save(ctx, item)
}

// Toggle flips the checked flag of an item
func (s *GroceryService) Toggle(ctx context.Context, id uuid.UUID) (*domain.GroceryItem, error) {
	item, err := s.GroceryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.IsChecked = !item.IsChecked
	return s.save(ctx, item)
}

func (s *GroceryService) save(ctx context.Context, item *domain.GroceryItem) (*domain.GroceryItem, error) {
	item.UpdatedAt = s.Now()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.GroceryRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update grocery item: %w", err)
	}
	return item, nil
}

func (s *GroceryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.GroceryRepo.Delete(ctx, id)
}

// ClearChecked removes every checked item and returns how many were removed
func (s *GroceryService) ClearChecked(ctx context.Context) (int, error) {
	removed, err := s.GroceryRepo.DeleteChecked(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear checked items: %w", err)
	}
	return removed, nil
}

func apply(item *domain.GroceryItem, input Input) {
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		item.Category = domain.TrimOptional(input.Category)
	}
	if input.IsChecked != nil {
		item.IsChecked = *input.IsChecked
	}
}
