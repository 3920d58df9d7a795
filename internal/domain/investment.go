package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is a position (lot) in the investment portfolio.
// Symbols are not unique: several lots of the same symbol may coexist.
type Holding struct {
	ID           uuid.UUID        `json:"id"`
	Symbol       string           `json:"symbol"`
	Shares       decimal.Decimal  `json:"shares"`
	AvgCost      decimal.Decimal  `json:"avgCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"` // NULL when no live price is known
	Notes        *string          `json:"notes"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// WatchlistItem is a symbol the user follows without holding it
type WatchlistItem struct {
	ID        uuid.UUID `json:"id"`
	Symbol    string    `json:"symbol"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeSymbol trims and upper-cases a ticker symbol
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// EffectivePrice returns the current price, or the average cost when no price is known
func (h *Holding) EffectivePrice() decimal.Decimal {
	if h.CurrentPrice != nil {
		return *h.CurrentPrice
	}
	return h.AvgCost
}

// Validate ensures the holding adheres to domain rules
func (h *Holding) Validate() error {
	if err := checkLength("symbol", h.Symbol, 1, 10); err != nil {
		return err
	}
	if h.Symbol != NormalizeSymbol(h.Symbol) {
		return invalid("symbol must be upper case")
	}
	if h.Shares.LessThanOrEqual(decimal.Zero) {
		return invalid("shares must be positive")
	}
	if h.AvgCost.LessThan(decimal.Zero) {
		return invalid("average cost must not be negative")
	}
	if h.CurrentPrice != nil && h.CurrentPrice.LessThan(decimal.Zero) {
		return invalid("current price must not be negative")
	}
	return checkOptional("notes", h.Notes, 1000)
}

// Validate ensures the watchlist item adheres to domain rules
func (w *WatchlistItem) Validate() error {
	if err := checkLength("symbol", w.Symbol, 1, 10); err != nil {
		return err
	}
	return checkOptional("notes", w.Notes, 1000)
}
