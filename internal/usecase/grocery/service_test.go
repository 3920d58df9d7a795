package grocery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestShoppingList(t *testing.T) {
	ctx := context.Background()
	service := NewGroceryService(memory.NewStore().Repositories().Groceries)

	eggs, err := service.Create(ctx, Input{Name: ptr(" eggs "), Category: ptr("dairy")})
	require.NoError(t, err)
	assert.Equal(t, "eggs", eggs.Name)
	assert.False(t, eggs.IsChecked)

	_, err = service.Create(ctx, Input{Name: ptr("spinach"), Category: ptr("")})
	require.NoError(t, err)

	toggled, err := service.Toggle(ctx, eggs.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsChecked)

	counts, err := service.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Counts{Total: 2, Unchecked: 1}, counts)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "spinach", items[0].Name)
	assert.Nil(t, items[0].Category)

	removed, err := service.ClearChecked(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	counts, err = service.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Counts{Total: 1, Unchecked: 1}, counts)
}

func TestCreate_RequiresName(t *testing.T) {
	service := NewGroceryService(memory.NewStore().Repositories().Groceries)

	_, err := service.Create(context.Background(), Input{Name: ptr("  ")})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestToggle_NotFound(t *testing.T) {
	service := NewGroceryService(memory.NewStore().Repositories().Groceries)

	_, err := service.Toggle(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
