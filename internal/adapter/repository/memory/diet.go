package memory

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// DietRepository implements domain.DietRepository
type DietRepository struct{ s *Store }

func (r *DietRepository) GetLog(_ context.Context, date time.Time) (*domain.DietLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	log, ok := r.s.dietLogs[dayKey(date)]
	if !ok {
		return nil, domain.NotFound("diet log", date)
	}
	return &log, nil
}

// ListLogs retrieves logs dated at or after since, newest first
func (r *DietRepository) ListLogs(_ context.Context, since time.Time) ([]*domain.DietLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.dietLogs, same[domain.DietLog], func(a, b *domain.DietLog) int {
		return b.Date.Compare(a.Date)
	})
	out := make([]*domain.DietLog, 0, len(all))
	for _, log := range all {
		if !log.Date.Before(since) {
			out = append(out, log)
		}
	}
	return out, nil
}

// UpsertLog inserts the log or overwrites the log of the same day
func (r *DietRepository) UpsertLog(_ context.Context, log *domain.DietLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey(log.Date)
	if existing, ok := r.s.dietLogs[key]; ok {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	}
	r.s.dietLogs[key] = *log
	return nil
}

// GetGoals retrieves the diet goals
func (r *DietRepository) GetGoals(_ context.Context) (*domain.DietGoals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.dietGoals == nil {
		return nil, fmt.Errorf("diet goals %w", domain.ErrNotFound)
	}
	goals := *r.s.dietGoals
	return &goals, nil
}

// SaveGoals inserts or updates the single diet goals row
func (r *DietRepository) SaveGoals(_ context.Context, goals *domain.DietGoals) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.dietGoals != nil {
		goals.ID = r.s.dietGoals.ID
	}
	saved := *goals
	r.s.dietGoals = &saved
	return nil
}

// SupplementRepository implements domain.SupplementRepository
type SupplementRepository struct{ s *Store }

// List retrieves supplements, active first, then by time of day, then by name
func (r *SupplementRepository) List(_ context.Context, activeOnly bool) ([]*domain.Supplement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.supplements, same[domain.Supplement], func(a, b *domain.Supplement) int {
		return cmp.Or(
			compareBool(a.IsActive, b.IsActive),
			compareOptional(a.TimeOfDay, b.TimeOfDay),
			strings.Compare(a.Name, b.Name),
			compareID(a.ID, b.ID),
		)
	})
	if !activeOnly {
		return all, nil
	}

	out := make([]*domain.Supplement, 0, len(all))
	for _, s := range all {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SupplementRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Supplement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	s, ok := r.s.supplements[id]
	if !ok {
		return nil, domain.NotFound("supplement", id)
	}
	return &s, nil
}

func (r *SupplementRepository) Create(_ context.Context, supplement *domain.Supplement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.supplements[supplement.ID] = *supplement
	return nil
}

func (r *SupplementRepository) Update(_ context.Context, supplement *domain.Supplement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.supplements[supplement.ID]; !ok {
		return domain.NotFound("supplement", supplement.ID)
	}
	r.s.supplements[supplement.ID] = *supplement
	return nil
}

func (r *SupplementRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.supplements[id]; !ok {
		return domain.NotFound("supplement", id)
	}
	delete(r.s.supplements, id)
	return nil
}

// WeightRepository implements domain.WeightRepository
type WeightRepository struct{ s *Store }

// List retrieves logs dated at or after since, oldest first
func (r *WeightRepository) List(_ context.Context, since time.Time) ([]*domain.WeightLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := values(r.s.weights, same[domain.WeightLog], func(a, b *domain.WeightLog) int {
		return a.Date.Compare(b.Date)
	})
	out := make([]*domain.WeightLog, 0, len(all))
	for _, log := range all {
		if !log.Date.Before(since) {
			out = append(out, log)
		}
	}
	return out, nil
}

// Latest retrieves the most recent log
func (r *WeightRepository) Latest(_ context.Context) (*domain.WeightLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *domain.WeightLog
	for _, log := range r.s.weights {
		if latest == nil || log.Date.After(latest.Date) {
			l := log
			latest = &l
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("weight log %w", domain.ErrNotFound)
	}
	return latest, nil
}

// Upsert inserts the log or overwrites the log of the same day
func (r *WeightRepository) Upsert(_ context.Context, log *domain.WeightLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey(log.Date)
	if existing, ok := r.s.weights[key]; ok {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	}
	r.s.weights[key] = *log
	return nil
}

func (r *WeightRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for key, log := range r.s.weights {
		if log.ID == id {
			delete(r.s.weights, key)
			return nil
		}
	}
	return domain.NotFound("weight log", id)
}
