package creative

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestIdeas(t *testing.T) {
	ctx := context.Background()
	service := NewCreativeService(memory.NewStore().Repositories().Ideas)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	service.Now = func() time.Time {
		now = now.Add(time.Minute)
		return now
	}

	song, err := service.Create(ctx, Input{Title: ptr("Song about trains"), Category: ptr("music"), Tags: []string{"lyrics", "lyrics"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"lyrics"}, song.Tags)

	_, err = service.Create(ctx, Input{Title: ptr("Short story"), Category: ptr("writing")})
	require.NoError(t, err)

	pinned, err := service.TogglePin(ctx, song.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	ideas, err := service.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Song about trains", ideas[0].Title)

	music, err := service.List(ctx, "music")
	require.NoError(t, err)
	assert.Len(t, music, 1)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Total: 2, Pinned: 1}, stats)
}

func TestCreate_TooManyTags(t *testing.T) {
	service := NewCreativeService(memory.NewStore().Repositories().Ideas)

	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	_, err := service.Create(context.Background(), Input{Title: ptr("Everything"), Tags: tags})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
