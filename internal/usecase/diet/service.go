package diet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

// Default look-back windows, in days
const (
	DefaultLogDays    = 7
	DefaultWeightDays = 30
)

// LogInput holds the macro totals of a day. A nil Date means today.
type LogInput struct {
	Date     *time.Time `json:"date"`
	Calories int        `json:"calories"`
	Protein  int        `json:"protein"`
	Carbs    int        `json:"carbs"`
	Fat      int        `json:"fat"`
	Fiber    int        `json:"fiber"`
	Water    float64    `json:"water"`
	Notes    *string    `json:"notes"`
}

// SupplementInput holds the fields of a supplement. On update, nil fields are left unchanged.
type SupplementInput struct {
	Name      *string `json:"name"`
	Dosage    *string `json:"dosage"`
	Frequency *string `json:"frequency"`
	TimeOfDay *string `json:"timeOfDay"` // empty string clears
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"isActive"`
}

// WeightInput records the body weight of a day. A nil Date means today.
type WeightInput struct {
	Date   *time.Time `json:"date"`
	Weight float64    `json:"weight"`
	Notes  *string    `json:"notes"`
}

// Stats summarises the diet page header
type Stats struct {
	ActiveSupplements int              `json:"activeSupplements"`
	CurrentWeight     *float64         `json:"currentWeight"`
	Goals             domain.DietGoals `json:"goals"`
}

// DietService handles diet logs, diet goals, supplements and weight logs
type DietService struct {
	DietRepo       domain.DietRepository
	SupplementRepo domain.SupplementRepository
	WeightRepo     domain.WeightRepository
	Calendar       calendar.Calendar
	Now            func() time.Time
}

// NewDietService creates a new DietService instance
func NewDietService(
	dietRepo domain.DietRepository,
	supplementRepo domain.SupplementRepository,
	weightRepo domain.WeightRepository,
	cal calendar.Calendar,
) *DietService {
	return &DietService{
		DietRepo:       dietRepo,
		SupplementRepo: supplementRepo,
		WeightRepo:     weightRepo,
		Calendar:       cal,
		Now:            time.Now,
	}
}

// day returns the start of the given day, or of today when date is nil
func (s *DietService) day(date *time.Time) time.Time {
	if date == nil {
		return s.Calendar.StartOfDay(s.Now())
	}
	return s.Calendar.StartOfDay(*date)
}

// since returns the start of the day `days` days before today
func (s *DietService) since(days int) time.Time {
	today := s.Calendar.DayOf(s.Now())
	return s.Calendar.Start(today.AddDays(-days))
}

// GetLog returns the log of the given day (today when nil), or nil when nothing was logged
func (s *DietService) GetLog(ctx context.Context, date *time.Time) (*domain.DietLog, error) {
	log, err := s.DietRepo.GetLog(ctx, s.day(date))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diet log: %w", err)
	}
	return log, nil
}

// ListLogs returns the logs of the last `days` days, newest first
func (s *DietService) ListLogs(ctx context.Context, days int) ([]*domain.DietLog, error) {
	if days <= 0 {
		days = DefaultLogDays
	}
	logs, err := s.DietRepo.ListLogs(ctx, s.since(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list diet logs: %w", err)
	}
	return logs, nil
}

// UpsertLog stores the totals of a day, replacing what was logged for that day
func (s *DietService) UpsertLog(ctx context.Context, input LogInput) (*domain.DietLog, error) {
	now := s.Now()
	log := &domain.DietLog{
		ID:        uuid.New(),
		Date:      s.day(input.Date),
		Calories:  input.Calories,
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fat:       input.Fat,
		Fiber:     input.Fiber,
		Water:     input.Water,
		Notes:     domain.TrimOptional(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	if err := s.DietRepo.UpsertLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save diet log: %w", err)
	}
	return log, nil
}

// Goals returns the diet goals, creating them with defaults on first use
func (s *DietService) Goals(ctx context.Context) (*domain.DietGoals, error) {
	goals, err := s.DietRepo.GetGoals(ctx)
	if err == nil {
		return goals, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get diet goals: %w", err)
	}

	defaults := domain.DefaultDietGoals()
	defaults.ID = uuid.New()
	defaults.UpdatedAt = s.Now()
	if err := s.DietRepo.SaveGoals(ctx, &defaults); err != nil {
		return nil, fmt.Errorf("failed to create diet goals: %w", err)
	}
	return &defaults, nil
}

// UpdateGoals replaces the diet goals
func (s *DietService) UpdateGoals(ctx context.Context, goals domain.DietGoals) (*domain.DietGoals, error) {
	if err := goals.Validate(); err != nil {
		return nil, err
	}

	current, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	goals.ID = current.ID
	goals.UpdatedAt = s.Now()

	if err := s.DietRepo.SaveGoals(ctx, &goals); err != nil {
		return nil, fmt.Errorf("failed to save diet goals: %w", err)
	}
	return &goals, nil
}

// ListSupplements returns supplements, active first, then by time of day, then by name
func (s *DietService) ListSupplements(ctx context.Context, activeOnly bool) ([]*domain.Supplement, error) {
	supplements, err := s.SupplementRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplements: %w", err)
	}
	return supplements, nil
}

// CreateSupplement stores a new supplement. Frequency defaults to daily and new supplements are active.
func (s *DietService) CreateSupplement(ctx context.Context, input SupplementInput) (*domain.Supplement, error) {
	now := s.Now()
	supplement := &domain.Supplement{
		ID:        uuid.New(),
		Frequency: domain.FrequencyDaily,
		IsActive:  true,
		CreatedAt: now,
	}
	applySupplement(supplement, input)
	supplement.UpdatedAt = now

	if err := supplement.Validate(); err != nil {
		return nil, err
	}
	if err := s.SupplementRepo.Create(ctx, supplement); err != nil {
		return nil, fmt.Errorf("failed to create supplement: %w", err)
	}
	return supplement, nil
}

// UpdateSupplement changes the given fields of a supplement
func (s *DietService) UpdateSupplement(ctx context.Context, id uuid.UUID, input SupplementInput) (*domain.Supplement, error) {
	supplement, err := s.SupplementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applySupplement(supplement, input)
	return s.saveSupplement(ctx, supplement)
}

// ToggleSupplement flips the active flag of a supplement
func (s *DietService) ToggleSupplement(ctx context.Context, id uuid.UUID) (*domain.Supplement, error) {
	supplement, err := s.SupplementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplement.IsActive = !supplement.IsActive
	return s.saveSupplement(ctx, supplement)
}

func (s *DietService) saveSupplement(ctx context.Context, supplement *domain.Supplement) (*domain.Supplement, error) {
	supplement.UpdatedAt = s.Now()
	if err := supplement.Validate(); err != nil {
		return nil, err
	}
	if err := s.SupplementRepo.Update(ctx, supplement); err != nil {
		return nil, fmt.Errorf("failed to update supplement: %w", err)
	}
	return supplement, nil
}

func (s *DietService) DeleteSupplement(ctx context.Context, id uuid.UUID) error {
	return s.SupplementRepo.Delete(ctx, id)
}

func applySupplement(s *domain.Supplement, input SupplementInput) {
	if input.Name != nil {
		s.Name = strings.TrimSpace(*input.Name)
	}
	if input.Dosage != nil {
		s.Dosage = domain.TrimOptional(input.Dosage)
	}
	if input.Frequency != nil {
		s.Frequency = strings.TrimSpace(*input.Frequency)
	}
	if input.TimeOfDay != nil {
		s.TimeOfDay = domain.TrimOptional(input.TimeOfDay)
	}
	if input.Notes != nil {
		s.Notes = domain.TrimOptional(input.Notes)
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
}

// ListWeights returns the weight logs of the last `days` days, oldest first
func (s *DietService) ListWeights(ctx context.Context, days int) ([]*domain.WeightLog, error) {
	if days <= 0 {
		days = DefaultWeightDays
	}
	logs, err := s.WeightRepo.List(ctx, s.since(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list weight logs: %w", err)
	}
	return logs, nil
}

// LatestWeight returns the most recent weight log, or nil when there is none
func (s *DietService) LatestWeight(ctx context.Context) (*domain.WeightLog, error) {
	log, err := s.WeightRepo.Latest(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest weight: %w", err)
	}
	return log, nil
}

// LogWeight stores the weight of a day, replacing what was logged for that day
func (s *DietService) LogWeight(ctx context.Context, input WeightInput) (*domain.WeightLog, error) {
	log := &domain.WeightLog{
		ID:        uuid.New(),
		Date:      s.day(input.Date),
		Weight:    input.Weight,
		Notes:     domain.TrimOptional(input.Notes),
		CreatedAt: s.Now(),
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	if err := s.WeightRepo.Upsert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save weight log: %w", err)
	}
	return log, nil
}

func (s *DietService) DeleteWeight(ctx context.Context, id uuid.UUID) error {
	return s.WeightRepo.Delete(ctx, id)
}

// Stats returns the active supplement count, the latest weight and the goals
func (s *DietService) Stats(ctx context.Context) (*Stats, error) {
	active, err := s.ListSupplements(ctx, true)
	if err != nil {
		return nil, err
	}
	latest, err := s.LatestWeight(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ActiveSupplements: len(active), Goals: *goals}
	if latest != nil {
		weight := latest.Weight
		stats.CurrentWeight = &weight
	}
	return stats, nil
}
