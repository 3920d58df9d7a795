package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/valuation"
)

// HoldingInput holds the fields of a holding.
// On update, nil fields are left unchanged.
type HoldingInput struct {
	Symbol       *string          `json:"symbol"`
	Shares       *decimal.Decimal `json:"shares"`
	AvgCost      *decimal.Decimal `json:"avgCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	ClearPrice   bool             `json:"clearPrice"`
	Notes        *string          `json:"notes"`
}

// InvestmentService handles holdings, the watchlist and portfolio valuation
type InvestmentService struct {
	HoldingRepo   domain.HoldingRepository
	WatchlistRepo domain.WatchlistRepository
	Now           func() time.Time
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(holdingRepo domain.HoldingRepository, watchlistRepo domain.WatchlistRepository) *InvestmentService {
	return &InvestmentService{
		HoldingRepo:   holdingRepo,
		WatchlistRepo: watchlistRepo,
		Now:           time.Now,
	}
}

// ListHoldings returns every holding sorted by symbol
func (s *InvestmentService) ListHoldings(ctx context.Context) ([]*domain.Holding, error) {
	holdings, err := s.HoldingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// Portfolio values the current holdings.
// Logic: re-run the valuation over the full holding list, nothing is cached.
func (s *InvestmentService) Portfolio(ctx context.Context) (*valuation.Portfolio, error) {
	holdings, err := s.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	portfolio := valuation.Valuate(holdings)
	return &portfolio, nil
}

// AddHolding records a new lot. Symbols are upper-cased and may repeat.
func (s *InvestmentService) AddHolding(ctx context.Context, input HoldingInput) (*domain.Holding, error) {
	now := s.Now()
	holding := &domain.Holding{
		ID:        uuid.New(),
		CreatedAt: now,
	}
	applyHolding(holding, input)
	holding.UpdatedAt = now

	if err := holding.Validate(); err != nil {
		return nil, err
	}
	if err := s.HoldingRepo.Create(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}
	return holding, nil
}

// UpdateHolding changes the given fields of a holding
func (s *InvestmentService) UpdateHolding(ctx context.Context, id uuid.UUID, input HoldingInput) (*domain.Holding, error) {
	holding, err := s.HoldingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyHolding(holding, input)
	holding.UpdatedAt = s.Now()

	if err := holding.Validate(); err != nil {
		return nil, err
	}
	if err := s.HoldingRepo.Update(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}
	return holding, nil
}

func (s *InvestmentService) DeleteHolding(ctx context.Context, id uuid.UUID) error {
	return s.HoldingRepo.Delete(ctx, id)
}

func applyHolding(h *domain.Holding, input HoldingInput) {
	if input.Symbol != nil {
		h.Symbol = domain.NormalizeSymbol(*input.Symbol)
	}
	if input.Shares != nil {
		h.Shares = *input.Shares
	}
	if input.AvgCost != nil {
		h.AvgCost = *input.AvgCost
	}
	switch {
	case input.ClearPrice:
		h.CurrentPrice = nil
	case input.CurrentPrice != nil:
		price := *input.CurrentPrice
		h.CurrentPrice = &price
	}
	if input.Notes != nil {
		h.Notes = domain.TrimOptional(input.Notes)
	}
}

// ListWatchlist returns the watchlist, newest first
func (s *InvestmentService) ListWatchlist(ctx context.Context) ([]*domain.WatchlistItem, error) {
	items, err := s.WatchlistRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return items, nil
}

// AddToWatchlist follows a symbol
func (s *InvestmentService) AddToWatchlist(ctx context.Context, symbol string, notes *string) (*domain.WatchlistItem, error) {
	item := &domain.WatchlistItem{
		ID:        uuid.New(),
		Symbol:    domain.NormalizeSymbol(symbol),
		Notes:     domain.TrimOptional(notes),
		CreatedAt: s.Now(),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.WatchlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add to watchlist: %w", err)
	}
	return item, nil
}

// UpdateWatchlistNotes replaces the notes of a watchlist item
func (s *InvestmentService) UpdateWatchlistNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.WatchlistItem, error) {
	item, err := s.WatchlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Notes = domain.TrimOptional(notes)
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.WatchlistRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update watchlist item: %w", err)
	}
	return item, nil
}

func (s *InvestmentService) RemoveFromWatchlist(ctx context.Context, id uuid.UUID) error {
	return s.WatchlistRepo.Delete(ctx, id)
}
