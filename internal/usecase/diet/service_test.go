package diet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (*DietService, *clock) {
	t.Helper()
	cal, err := calendar.Load("America/Los_Angeles")
	require.NoError(t, err)

	repos := memory.NewStore().Repositories()
	c := &clock{now: time.Date(2026, 10, 18, 22, 30, 0, 0, cal.Location())}
	service := NewDietService(repos.Diet, repos.Supplements, repos.Weights, cal)
	service.Now = c.Now
	return service, c
}

func TestUpsertLog_KeyedByLocalDay(t *testing.T) {
	ctx := context.Background()
	service, c := newService(t)

	// 22:30 in Los Angeles is already the next day in UTC
	_, err := service.UpsertLog(ctx, LogInput{Calories: 1500, Protein: 120})
	require.NoError(t, err)

	c.now = c.now.Add(time.Hour)
	_, err = service.UpsertLog(ctx, LogInput{Calories: 2100, Protein: 160})
	require.NoError(t, err)

	log, err := service.GetLog(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, 2100, log.Calories)

	logs, err := service.ListLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestGetLog_NothingLogged(t *testing.T) {
	service, _ := newService(t)

	log, err := service.GetLog(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, log)
}

func TestUpsertLog_Invalid(t *testing.T) {
	service, _ := newService(t)

	_, err := service.UpsertLog(context.Background(), LogInput{Calories: -1})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGoals_CreatedWithDefaults(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	goals, err := service.Goals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000, goals.Calories)
	assert.Equal(t, 150, goals.Protein)
	assert.Equal(t, 200, goals.Carbs)
	assert.Equal(t, 65, goals.Fat)
	assert.Equal(t, 30, goals.Fiber)
	assert.Equal(t, float64(100), goals.Water)

	again, err := service.Goals(ctx)
	require.NoError(t, err)
	assert.Equal(t, goals.ID, again.ID)

	updated := domain.DefaultDietGoals()
	updated.Calories = 2400
	saved, err := service.UpdateGoals(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, goals.ID, saved.ID)
	assert.Equal(t, 2400, saved.Calories)

	updated.Calories = 100
	_, err = service.UpdateGoals(ctx, updated)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSupplements(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	creatine, err := service.CreateSupplement(ctx, SupplementInput{Name: ptr("Creatine"), Dosage: ptr("5g")})
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyDaily, creatine.Frequency)
	assert.True(t, creatine.IsActive)

	_, err = service.CreateSupplement(ctx, SupplementInput{Name: ptr("Melatonin"), TimeOfDay: ptr("midnight")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	toggled, err := service.ToggleSupplement(ctx, creatine.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	active, err := service.ListSupplements(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestWeights(t *testing.T) {
	ctx := context.Background()
	service, c := newService(t)

	latest, err := service.LatestWeight(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	lastMonth := c.now.AddDate(0, 0, -45)
	_, err = service.LogWeight(ctx, WeightInput{Date: &lastMonth, Weight: 190})
	require.NoError(t, err)
	yesterday := c.now.AddDate(0, 0, -1)
	_, err = service.LogWeight(ctx, WeightInput{Date: &yesterday, Weight: 184.5})
	require.NoError(t, err)
	_, err = service.LogWeight(ctx, WeightInput{Weight: 184})
	require.NoError(t, err)

	recent, err := service.ListWeights(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 184.5, recent[0].Weight)

	_, err = service.LogWeight(ctx, WeightInput{Weight: 20})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats.CurrentWeight)
	assert.Equal(t, float64(184), *stats.CurrentWeight)
	assert.Equal(t, 0, stats.ActiveSupplements)
	assert.Equal(t, 2000, stats.Goals.Calories)
}
