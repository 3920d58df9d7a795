package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T) (*JournalService, *clock) {
	t.Helper()
	cal, err := calendar.Load("America/Los_Angeles")
	require.NoError(t, err)

	c := &clock{now: time.Date(2026, 10, 18, 21, 0, 0, 0, cal.Location())}
	service := NewJournalService(memory.NewStore().Repositories().Journal, cal)
	service.Now = c.Now
	return service, c
}

func text(s string) *string { return &s }

func TestCreate_NormalizesTags(t *testing.T) {
	service, _ := newService(t)

	entry, err := service.Create(context.Background(), Input{
		Content: text("Long run by the river"),
		Tags:    []string{"running", " running", "", "outdoors"},
		Mood:    text("great"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"running", "outdoors"}, entry.Tags)
	assert.Equal(t, "great", *entry.Mood)
}

func TestCreate_EmptyContent(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Create(context.Background(), Input{Content: text("   ")})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestUpdate_KeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	service, c := newService(t)

	entry, err := service.Create(ctx, Input{Content: text("first draft")})
	require.NoError(t, err)
	created := entry.CreatedAt

	c.now = c.now.Add(48 * time.Hour)
	updated, err := service.Update(ctx, entry.ID, Input{Content: text("second draft"), Mood: text("")})

	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Content)
	assert.Nil(t, updated.Mood)
	assert.True(t, updated.CreatedAt.Equal(created))
	assert.True(t, updated.UpdatedAt.Equal(c.now))
}

func TestUpdate_NotFound(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Update(context.Background(), uuid.New(), Input{Content: text("x")})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestList_Search(t *testing.T) {
	ctx := context.Background()
	service, c := newService(t)

	_, err := service.Create(ctx, Input{Content: text("Morning Pages"), Tags: []string{"writing"}})
	require.NoError(t, err)
	c.now = c.now.Add(time.Minute)
	_, err = service.Create(ctx, Input{Content: text("Gym session"), Tags: []string{"fitness"}})
	require.NoError(t, err)

	byContent, err := service.List(ctx, "morning")
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "Morning Pages", byContent[0].Content)

	byTag, err := service.List(ctx, "fitness")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Gym session", byTag[0].Content)

	all, err := service.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gym session", all[0].Content)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	service, c := newService(t)
	today := c.now

	// Entries on three consecutive days ending yesterday, plus one 40 days ago
	for _, daysAgo := range []int{40, 3, 2, 1} {
		c.now = today.AddDate(0, 0, -daysAgo)
		_, err := service.Create(ctx, Input{Content: text("entry")})
		require.NoError(t, err)
	}
	c.now = today

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Streak)
	assert.Equal(t, 3, stats.RecentCount)
}

func TestStreak_NoEntries(t *testing.T) {
	service, _ := newService(t)

	current, err := service.Streak(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, current)
}
