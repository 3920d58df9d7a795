package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

var day = time.Date(2026, 10, 18, 7, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestWorkoutRepository_UpsertLogKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	template := &domain.WorkoutTemplate{ID: uuid.New(), Name: "PUSH DAY"}
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, template))
	exercise := &domain.TemplateExercise{ID: uuid.New(), TemplateID: template.ID, Name: "Bench Press"}
	require.NoError(t, repos.Workouts.AddExercise(ctx, exercise))

	first := &domain.ExerciseLog{
		ID: uuid.New(), ExerciseID: exercise.ID, Date: day,
		Entries:   []domain.SetEntry{{Weight: 100, Reps: 8}},
		CreatedAt: day.Add(time.Hour),
	}
	require.NoError(t, repos.Workouts.UpsertLog(ctx, first))

	// Second log on the same day overwrites the first
	second := &domain.ExerciseLog{
		ID: uuid.New(), ExerciseID: exercise.ID, Date: day,
		Entries:   []domain.SetEntry{{Weight: 105, Reps: 6}},
		CreatedAt: day.Add(2 * time.Hour),
	}
	require.NoError(t, repos.Workouts.UpsertLog(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))

	logs, err := repos.Workouts.ListLogs(ctx, exercise.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, []domain.SetEntry{{Weight: 105, Reps: 6}}, logs[0].Entries)
}

func TestWorkoutRepository_UpsertLogUnknownExercise(t *testing.T) {
	repos := NewStore().Repositories()

	err := repos.Workouts.UpsertLog(context.Background(), &domain.ExerciseLog{
		ID: uuid.New(), ExerciseID: uuid.New(), Date: day,
		Entries: []domain.SetEntry{{Weight: 1, Reps: 1}},
	})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestWorkoutRepository_DeleteTemplateCascades(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	template := &domain.WorkoutTemplate{
		ID:   uuid.New(),
		Name: "LEG DAY",
		Exercises: []domain.TemplateExercise{
			{ID: uuid.New(), Name: "Squat", Order: 0},
			{ID: uuid.New(), Name: "Leg Press", Order: 1},
		},
	}
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, template))
	squatID := template.Exercises[0].ID
	require.NoError(t, repos.Workouts.UpsertLog(ctx, &domain.ExerciseLog{
		ID: uuid.New(), ExerciseID: squatID, Date: day,
		Entries: []domain.SetEntry{{Weight: 140, Reps: 5}},
	}))

	stored, err := repos.Workouts.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	require.Len(t, stored.Exercises, 2)
	assert.Equal(t, "Squat", stored.Exercises[0].Name)
	assert.Len(t, stored.Exercises[0].Logs, 1)

	require.NoError(t, repos.Workouts.DeleteTemplate(ctx, template.ID))

	_, err = repos.Workouts.GetExercise(ctx, squatID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	logs, err := repos.Workouts.ListLogsByExerciseName(ctx, "Squat", 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWorkoutRepository_ListLogsByExerciseName(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	push := &domain.WorkoutTemplate{ID: uuid.New(), Name: "PUSH", Exercises: []domain.TemplateExercise{{ID: uuid.New(), Name: "Bench Press"}}}
	upper := &domain.WorkoutTemplate{ID: uuid.New(), Name: "UPPER", Exercises: []domain.TemplateExercise{
		{ID: uuid.New(), Name: "Bench Press"},
		{ID: uuid.New(), Name: "bench press"},
	}}
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, push))
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, upper))

	logAt := func(exerciseID uuid.UUID, date, created time.Time) {
		require.NoError(t, repos.Workouts.UpsertLog(ctx, &domain.ExerciseLog{
			ID: uuid.New(), ExerciseID: exerciseID, Date: date,
			Entries: []domain.SetEntry{{Weight: 1, Reps: 1}}, CreatedAt: created,
		}))
	}
	logAt(push.Exercises[0].ID, day, day)
	logAt(upper.Exercises[0].ID, day.AddDate(0, 0, -3), day.Add(time.Hour))
	logAt(upper.Exercises[1].ID, day, day.Add(2*time.Hour))

	logs, err := repos.Workouts.ListLogsByExerciseName(ctx, "Bench Press", 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, upper.Exercises[0].ID, logs[0].ExerciseID)
	assert.Equal(t, push.Exercises[0].ID, logs[1].ExerciseID)

	limited, err := repos.Workouts.ListLogsByExerciseName(ctx, "Bench Press", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestWorkoutRepository_ListLogsByExerciseName_TiePutsLaterInsertFirst(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	push := &domain.WorkoutTemplate{ID: uuid.New(), Name: "PUSH", Exercises: []domain.TemplateExercise{{ID: uuid.New(), Name: "Bench Press"}}}
	upper := &domain.WorkoutTemplate{ID: uuid.New(), Name: "UPPER", Exercises: []domain.TemplateExercise{{ID: uuid.New(), Name: "Bench Press"}}}
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, push))
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, upper))

	for _, exercise := range []domain.TemplateExercise{push.Exercises[0], upper.Exercises[0]} {
		require.NoError(t, repos.Workouts.UpsertLog(ctx, &domain.ExerciseLog{
			ID: uuid.New(), ExerciseID: exercise.ID, Date: day,
			Entries: []domain.SetEntry{{Weight: 1, Reps: 1}}, CreatedAt: day,
		}))
	}

	logs, err := repos.Workouts.ListLogsByExerciseName(ctx, "Bench Press", 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, upper.Exercises[0].ID, logs[0].ExerciseID)
}

func TestGroceryRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	items := []*domain.GroceryItem{
		{ID: uuid.New(), Name: "milk", Category: strPtr("dairy"), IsChecked: true, CreatedAt: day},
		{ID: uuid.New(), Name: "apples", Category: strPtr("produce"), CreatedAt: day},
		{ID: uuid.New(), Name: "bread", CreatedAt: day},
		{ID: uuid.New(), Name: "cheese", Category: strPtr("dairy"), CreatedAt: day.Add(time.Minute)},
		{ID: uuid.New(), Name: "yogurt", Category: strPtr("dairy"), CreatedAt: day},
	}
	for _, item := range items {
		require.NoError(t, repos.Groceries.Create(ctx, item))
	}

	list, err := repos.Groceries.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"cheese", "yogurt", "apples", "bread", "milk"}, names)

	removed, err := repos.Groceries.DeleteChecked(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestSupplementRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	for _, s := range []*domain.Supplement{
		{ID: uuid.New(), Name: "Zinc", Frequency: domain.FrequencyDaily, IsActive: true, TimeOfDay: strPtr("evening")},
		{ID: uuid.New(), Name: "Creatine", Frequency: domain.FrequencyDaily, IsActive: true},
		{ID: uuid.New(), Name: "Iron", Frequency: domain.FrequencyWeekly, IsActive: false, TimeOfDay: strPtr("bedtime")},
		{ID: uuid.New(), Name: "Fish Oil", Frequency: domain.FrequencyDaily, IsActive: true, TimeOfDay: strPtr("evening")},
	} {
		require.NoError(t, repos.Supplements.Create(ctx, s))
	}

	all, err := repos.Supplements.List(ctx, false)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Fish Oil", "Zinc", "Creatine", "Iron"}, names)

	active, err := repos.Supplements.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestDietRepository_UpsertAndGoals(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	first := &domain.DietLog{ID: uuid.New(), Date: day, Calories: 1800, CreatedAt: day}
	require.NoError(t, repos.Diet.UpsertLog(ctx, first))
	second := &domain.DietLog{ID: uuid.New(), Date: day, Calories: 2100, CreatedAt: day.Add(time.Hour)}
	require.NoError(t, repos.Diet.UpsertLog(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	stored, err := repos.Diet.GetLog(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2100, stored.Calories)

	_, err = repos.Diet.GetGoals(ctx)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	goals := domain.DefaultDietGoals()
	goals.ID = uuid.New()
	require.NoError(t, repos.Diet.SaveGoals(ctx, &goals))
	saved, err := repos.Diet.GetGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2000, saved.Calories)
}

func TestRepositories_NotFound(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	id := uuid.New()

	assert.True(t, errors.Is(repos.Tasks.Delete(ctx, id), domain.ErrNotFound))
	assert.True(t, errors.Is(repos.Journal.Delete(ctx, id), domain.ErrNotFound))
	assert.True(t, errors.Is(repos.Holdings.Update(ctx, &domain.Holding{ID: id}), domain.ErrNotFound))
	assert.True(t, errors.Is(repos.Goals.Delete(ctx, id), domain.ErrNotFound))
	assert.True(t, errors.Is(repos.Weights.Delete(ctx, id), domain.ErrNotFound))
	assert.True(t, errors.Is(repos.Ideas.Delete(ctx, id), domain.ErrNotFound))
	_, err := repos.Weights.Latest(ctx)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
