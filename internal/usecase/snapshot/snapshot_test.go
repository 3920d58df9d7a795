package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

type fakeSink struct {
	name string
	body []byte
	err  error
}

func (f *fakeSink) Put(_ context.Context, name string, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.name = name
	f.body = body
	return "mem://" + name, nil
}

var now = time.Date(2026, 10, 18, 22, 4, 0, 0, time.UTC)

func newExporter(t *testing.T) (*Exporter, domain.Repositories) {
	t.Helper()
	cal, err := calendar.Load("America/Los_Angeles")
	require.NoError(t, err)

	repos := memory.NewStore().Repositories()
	exporter := NewExporter(repos, cal)
	exporter.Now = func() time.Time { return now }
	return exporter, repos
}

func seed(t *testing.T, repos domain.Repositories) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repos.Tasks.Create(ctx, &domain.Task{ID: uuid.New(), Title: "a", Status: domain.TaskStatusPending}))
	require.NoError(t, repos.Tasks.Create(ctx, &domain.Task{ID: uuid.New(), Title: "b", Status: domain.TaskStatusCompleted}))

	template := &domain.WorkoutTemplate{
		ID:   uuid.New(),
		Name: "PUSH DAY",
		Exercises: []domain.TemplateExercise{
			{ID: uuid.New(), Name: "Bench Press"},
			{ID: uuid.New(), Name: "Dips", Order: 1},
			{ID: uuid.New(), Name: "Flyes", Order: 2},
		},
	}
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, template))
	require.NoError(t, repos.Workouts.CreateTemplate(ctx, &domain.WorkoutTemplate{ID: uuid.New(), Name: "REST", Order: 1}))
	require.NoError(t, repos.Workouts.UpsertLog(ctx, &domain.ExerciseLog{
		ID: uuid.New(), ExerciseID: template.Exercises[0].ID, Date: now,
		Entries: []domain.SetEntry{{Weight: 100, Reps: 5}},
	}))

	require.NoError(t, repos.Diet.UpsertLog(ctx, &domain.DietLog{ID: uuid.New(), Date: now, Calories: 1800}))
	goals := domain.DefaultDietGoals()
	require.NoError(t, repos.Diet.SaveGoals(ctx, &goals))
	require.NoError(t, repos.Supplements.Create(ctx, &domain.Supplement{ID: uuid.New(), Name: "Creatine", Frequency: domain.FrequencyDaily}))
	require.NoError(t, repos.Weights.Upsert(ctx, &domain.WeightLog{ID: uuid.New(), Date: now, Weight: 180}))
	require.NoError(t, repos.Holdings.Create(ctx, &domain.Holding{ID: uuid.New(), Symbol: "VOO", Shares: decimal.NewFromInt(1), AvgCost: decimal.NewFromInt(400)}))
	require.NoError(t, repos.Watchlist.Create(ctx, &domain.WatchlistItem{ID: uuid.New(), Symbol: "AMD"}))
	require.NoError(t, repos.Journal.Create(ctx, &domain.JournalEntry{ID: uuid.New(), Content: "hello"}))
	require.NoError(t, repos.Groceries.Create(ctx, &domain.GroceryItem{ID: uuid.New(), Name: "eggs"}))
	require.NoError(t, repos.Goals.Create(ctx, &domain.Goal{ID: uuid.New(), Title: "g", Type: domain.GoalTypeShort, Status: domain.GoalStatusActive}))
	require.NoError(t, repos.Ideas.Create(ctx, &domain.CreativeIdea{ID: uuid.New(), Title: "idea"}))
	require.NoError(t, repos.Quotes.Upsert(ctx, &domain.DailyQuote{ID: uuid.New(), Date: now, Quote: "q"}))
}

func TestExport_Empty(t *testing.T) {
	exporter, _ := newExporter(t)

	snap, err := exporter.Export(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Version, snap.Version)
	assert.Equal(t, 0, snap.Stats.Total)
	assert.Nil(t, snap.Data.Diet.Goals)
	assert.NotNil(t, snap.Data.Tasks)
}

func TestExport_Stats(t *testing.T) {
	exporter, repos := newExporter(t)
	seed(t, repos)

	snap, err := exporter.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Stats{
		Tasks:            2,
		WorkoutTemplates: 2,
		Exercises:        3,
		ExerciseLogs:     1,
		DietLogs:         1,
		Supplements:      1,
		WeightLogs:       1,
		Holdings:         1,
		WatchlistItems:   1,
		JournalEntries:   1,
		GroceryItems:     1,
		Goals:            1,
		CreativeIdeas:    1,
		DailyQuotes:      1,
		Total:            18,
	}, snap.Stats)
	assert.NotNil(t, snap.Data.Diet.Goals)

	stats, err := exporter.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Stats, *stats)
}

func TestExport_Timestamps(t *testing.T) {
	exporter, _ := newExporter(t)

	snap, err := exporter.Export(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.ExportedAt.Equal(now))
	assert.Equal(t, "October 18, 2026 at 3:04 PM", snap.ExportedAtLA)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2026-10-18T22:04:00Z", doc["exportedAt"])
	assert.Equal(t, "1.0", doc["version"])
	assert.Contains(t, doc, "exportedAtLA")
	assert.Contains(t, doc["stats"], "total")
}

func TestBackup(t *testing.T) {
	exporter, repos := newExporter(t)
	seed(t, repos)
	sink := &fakeSink{}

	result, err := exporter.Backup(context.Background(), sink)

	require.NoError(t, err)
	assert.Equal(t, "life-dashboard-backup-2026-10-18T220400Z.json", sink.name)
	assert.Equal(t, "mem://"+sink.name, result.Location)
	assert.Equal(t, len(sink.body), result.Size)
	assert.Equal(t, 18, result.Stats.Total)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(sink.body, &decoded))
	assert.Len(t, decoded.Data.Fitness.Templates, 2)
}

func TestBackup_SinkError(t *testing.T) {
	exporter, _ := newExporter(t)

	_, err := exporter.Backup(context.Background(), &fakeSink{err: errors.New("access denied")})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store backup")
}

type contents struct {
	Tasks       []*domain.Task
	Journal     []*domain.JournalEntry
	Templates   []*domain.WorkoutTemplate
	Holdings    []*domain.Holding
	Watchlist   []*domain.WatchlistItem
	Goals       []*domain.Goal
	DietLogs    []*domain.DietLog
	DietGoals   *domain.DietGoals
	Supplements []*domain.Supplement
	Weights     []*domain.WeightLog
	Groceries   []*domain.GroceryItem
	Ideas       []*domain.CreativeIdea
	Quotes      []*domain.DailyQuote
}

func readAll(t *testing.T, repos domain.Repositories) contents {
	t.Helper()
	ctx := context.Background()
	var c contents
	var err error

	c.Tasks, err = repos.Tasks.List(ctx)
	require.NoError(t, err)
	c.Journal, err = repos.Journal.List(ctx, "")
	require.NoError(t, err)
	c.Templates, err = repos.Workouts.ListTemplates(ctx)
	require.NoError(t, err)
	c.Holdings, err = repos.Holdings.List(ctx)
	require.NoError(t, err)
	c.Watchlist, err = repos.Watchlist.List(ctx)
	require.NoError(t, err)
	c.Goals, err = repos.Goals.List(ctx, "")
	require.NoError(t, err)
	c.DietLogs, err = repos.Diet.ListLogs(ctx, time.Time{})
	require.NoError(t, err)
	c.DietGoals, err = repos.Diet.GetGoals(ctx)
	require.NoError(t, err)
	c.Supplements, err = repos.Supplements.List(ctx, false)
	require.NoError(t, err)
	c.Weights, err = repos.Weights.List(ctx, time.Time{})
	require.NoError(t, err)
	c.Groceries, err = repos.Groceries.List(ctx)
	require.NoError(t, err)
	c.Ideas, err = repos.Ideas.List(ctx, "")
	require.NoError(t, err)
	c.Quotes, err = repos.Quotes.List(ctx)
	require.NoError(t, err)
	return c
}

func TestExporter_DoesNotWrite(t *testing.T) {
	ctx := context.Background()

	// Setup
	exporter, repos := newExporter(t)
	seed(t, repos)
	before := readAll(t, repos)

	// Execute
	_, err := exporter.Export(ctx)
	require.NoError(t, err)
	_, err = exporter.Stats(ctx)
	require.NoError(t, err)
	_, err = exporter.Backup(ctx, &fakeSink{})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, before, readAll(t, repos))
}
