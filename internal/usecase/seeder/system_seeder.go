package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// DietGoalsID is the fixed id of the single diet goals row
var DietGoalsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SystemSeeder ensures the records the app expects on start exist
type SystemSeeder struct {
	repo domain.DietRepository
	now  func() time.Time
}

// NewSystemSeeder creates a new SystemSeeder instance
func NewSystemSeeder(repo domain.DietRepository) *SystemSeeder {
	return &SystemSeeder{
		repo: repo,
		now:  time.Now,
	}
}

// Seed creates the default diet goals if they were never saved
func (s *SystemSeeder) Seed(ctx context.Context) error {
	_, err := s.repo.GetGoals(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	goals := domain.DefaultDietGoals()
	goals.ID = DietGoalsID
	goals.UpdatedAt = s.now()

	// Validate before creating
	if err := goals.Validate(); err != nil {
		return err
	}
	return s.repo.SaveGoals(ctx, &goals)
}
