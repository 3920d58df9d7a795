package memory

import (
	"context"
	"time"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// QuoteRepository implements domain.QuoteRepository
type QuoteRepository struct{ s *Store }

func (r *QuoteRepository) GetByDate(_ context.Context, date time.Time) (*domain.DailyQuote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.quotes[dayKey(date)]
	if !ok {
		return nil, domain.NotFound("quote for", date)
	}
	return &q, nil
}

// List retrieves every stored quote, newest day first
func (r *QuoteRepository) List(_ context.Context) ([]*domain.DailyQuote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return values(r.s.quotes, same[domain.DailyQuote], func(a, b *domain.DailyQuote) int {
		return b.Date.Compare(a.Date)
	}), nil
}

// Upsert inserts the quote or overwrites the quote of the same day
func (r *QuoteRepository) Upsert(_ context.Context, quote *domain.DailyQuote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := dayKey(quote.Date)
	if existing, ok := r.s.quotes[key]; ok {
		quote.ID = existing.ID
		quote.CreatedAt = existing.CreatedAt
	}
	r.s.quotes[key] = *quote
	return nil
}
