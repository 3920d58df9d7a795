package creative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// Input holds the fields of an idea. On update, nil fields are left unchanged.
type Input struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

// Stats counts ideas
type Stats struct {
	Total  int `json:"total"`
	Pinned int `json:"pinned"`
}

// CreativeService handles creative ideas
type CreativeService struct {
	IdeaRepo domain.IdeaRepository
	Now      func() time.Time
}

// NewCreativeService creates a new CreativeService instance
func NewCreativeService(ideaRepo domain.IdeaRepository) *CreativeService {
	return &CreativeService{
		IdeaRepo: ideaRepo,
		Now:      time.Now,
	}
}

// List returns ideas of a category (all when empty), pinned first then newest first
func (s *CreativeService) List(ctx context.Context, category string) ([]*domain.CreativeIdea, error) {
	ideas, err := s.IdeaRepo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

func (s *CreativeService) Stats(ctx context.Context) (*Stats, error) {
	ideas, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(ideas)}
	for _, idea := range ideas {
		if idea.IsPinned {
			stats.Pinned++
		}
	}
	return stats, nil
}

func (s *CreativeService) Create(ctx context.Context, input Input) (*domain.CreativeIdea, error) {
	now := s.Now()
	idea := &domain.CreativeIdea{
		ID:        uuid.New(),
		Tags:      []string{},
		CreatedAt: now,
	}
	apply(idea, input)
	idea.UpdatedAt = now

	if err := idea.Validate(); err != nil {
		return nil, err
	}
	if err := s.IdeaRepo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return idea, nil
}

func (s *CreativeService) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.CreativeIdea, error) {
	idea, err := s.IdeaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(idea, input)
	return s.save(ctx, idea)
}

// TogglePin pins or unpins an idea
func (s *CreativeService) TogglePin(ctx context.Context, id uuid.UUID) (*domain.CreativeIdea, error) {
	idea, err := s.IdeaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idea.IsPinned = !idea.IsPinned
	return s.save(ctx, idea)
}

func (s *CreativeService) save(ctx context.Context, idea *domain.CreativeIdea) (*domain.CreativeIdea, error) {
	idea.UpdatedAt = s.Now()
	if err := idea.Validate(); err != nil {
		return nil, err
	}
	if err := s.IdeaRepo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return idea, nil
}

func (s *CreativeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.IdeaRepo.Delete(ctx, id)
}

func apply(idea *domain.CreativeIdea, input Input) {
	if input.Title != nil {
		idea.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		idea.Content = domain.TrimOptional(input.Content)
	}
	if input.Category != nil {
		idea.Category = domain.TrimOptional(input.Category)
	}
	if input.Tags != nil {
		idea.Tags = domain.NormalizeTags(input.Tags)
	}
	if input.IsPinned != nil {
		idea.IsPinned = *input.IsPinned
	}
}
