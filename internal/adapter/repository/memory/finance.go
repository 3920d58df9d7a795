package memory

import (
	"cmp"
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// HoldingRepository implements domain.HoldingRepository
type HoldingRepository struct{ s *Store }

// List retrieves all holdings sorted by symbol
func (r *HoldingRepository) List(_ context.Context) ([]*domain.Holding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.holdings, same[domain.Holding], func(a, b *domain.Holding) int {
		return cmp.Or(strings.Compare(a.Symbol, b.Symbol), a.CreatedAt.Compare(b.CreatedAt), compareID(a.ID, b.ID))
	}), nil
}

func (r *HoldingRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Holding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.holdings[id]
	if !ok {
		return nil, domain.NotFound("holding", id)
	}
	return &h, nil
}

func (r *HoldingRepository) Create(_ context.Context, holding *domain.Holding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.holdings[holding.ID] = *holding
	return nil
}

func (r *HoldingRepository) Update(_ context.Context, holding *domain.Holding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.holdings[holding.ID]; !ok {
		return domain.NotFound("holding", holding.ID)
	}
	r.s.holdings[holding.ID] = *holding
	return nil
}

func (r *HoldingRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.holdings[id]; !ok {
		return domain.NotFound("holding", id)
	}
	delete(r.s.holdings, id)
	return nil
}

// WatchlistRepository implements domain.WatchlistRepository
type WatchlistRepository struct{ s *Store }

// List retrieves all items, newest first
func (r *WatchlistRepository) List(_ context.Context) ([]*domain.WatchlistItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.watchlist, same[domain.WatchlistItem], func(a, b *domain.WatchlistItem) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareID(a.ID, b.ID))
	}), nil
}

func (r *WatchlistRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.WatchlistItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.watchlist[id]
	if !ok {
		return nil, domain.NotFound("watchlist item", id)
	}
	return &item, nil
}

func (r *WatchlistRepository) Create(_ context.Context, item *domain.WatchlistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.watchlist[item.ID] = *item
	return nil
}

func (r *WatchlistRepository) Update(_ context.Context, item *domain.WatchlistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.watchlist[item.ID]; !ok {
		return domain.NotFound("watchlist item", item.ID)
	}
	r.s.watchlist[item.ID] = *item
	return nil
}

func (r *WatchlistRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.watchlist[id]; !ok {
		return domain.NotFound("watchlist item", id)
	}
	delete(r.s.watchlist, id)
	return nil
}
