package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/streak"
)

// RecentWindow is how far back RecentCount looks
const RecentWindow = 30 * 24 * time.Hour

// Input holds the editable fields of an entry.
// On update, nil fields are left unchanged and an empty mood clears it.
type Input struct {
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
	Mood    *string  `json:"mood"`
}

// Stats summarises journaling activity
type Stats struct {
	Streak      int `json:"streak"`
	RecentCount int `json:"recentCount"`
}

// JournalService handles journal operations
type JournalService struct {
	JournalRepo domain.JournalRepository
	Calendar    calendar.Calendar
	Now         func() time.Time
}

// NewJournalService creates a new JournalService instance
func NewJournalService(journalRepo domain.JournalRepository, cal calendar.Calendar) *JournalService {
	return &JournalService{
		JournalRepo: journalRepo,
		Calendar:    cal,
		Now:         time.Now,
	}
}

// List returns entries newest first. A non-empty search matches content
// case-insensitively or a tag exactly.
func (s *JournalService) List(ctx context.Context, search string) ([]*domain.JournalEntry, error) {
	entries, err := s.JournalRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

func (s *JournalService) Get(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	return s.JournalRepo.GetByID(ctx, id)
}

// Create stores a new entry. Its CreatedAt is fixed from now on.
func (s *JournalService) Create(ctx context.Context, input Input) (*domain.JournalEntry, error) {
	now := s.Now()
	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		Tags:      domain.NormalizeTags(input.Tags),
		Mood:      domain.TrimOptional(input.Mood),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Content != nil {
		entry.Content = strings.TrimSpace(*input.Content)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.JournalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return entry, nil
}

// Update edits content, tags and mood. CreatedAt is never touched.
func (s *JournalService) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.JournalEntry, error) {
	entry, err := s.JournalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		entry.Content = strings.TrimSpace(*input.Content)
	}
	if input.Tags != nil {
		entry.Tags = domain.NormalizeTags(input.Tags)
	}
	if input.Mood != nil {
		entry.Mood = domain.TrimOptional(input.Mood)
	}
	entry.UpdatedAt = s.Now()

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.JournalRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.JournalRepo.Delete(ctx, id)
}

// Streak returns the number of consecutive journaling days ending today or yesterday
func (s *JournalService) Streak(ctx context.Context) (int, error) {
	entries, err := s.JournalRepo.ListRecent(ctx, streak.MaxEntries)
	if err != nil {
		return 0, fmt.Errorf("failed to list recent journal entries: %w", err)
	}

	createdAt := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		createdAt = append(createdAt, e.CreatedAt)
	}
	return streak.Current(createdAt, s.Now(), s.Calendar), nil
}

// RecentCount counts the entries written during the last 30 days
func (s *JournalService) RecentCount(ctx context.Context) (int, error) {
	count, err := s.JournalRepo.CountSince(ctx, s.Now().Add(-RecentWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// Stats returns the streak and the recent entry count
func (s *JournalService) Stats(ctx context.Context) (*Stats, error) {
	current, err := s.Streak(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentCount(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Streak: current, RecentCount: recent}, nil
}
