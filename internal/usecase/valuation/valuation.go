// Package valuation values the investment portfolio.
package valuation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Allocation is a holding's share of the total portfolio value
type Allocation struct {
	HoldingID  uuid.UUID       `json:"holdingId"`
	Symbol     string          `json:"symbol"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Portfolio is the valuation of a list of holdings
type Portfolio struct {
	TotalValue       decimal.Decimal `json:"totalValue"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	TotalGain        decimal.Decimal `json:"totalGain"`
	TotalGainPercent decimal.Decimal `json:"totalGainPercent"`
	HoldingsCount    int             `json:"holdingsCount"`
	Allocation       []Allocation    `json:"allocation"`
}

// Valuate computes totals and per-holding allocation for holdings.
//
// Logic:
//   - Price = current price, or average cost when no price is known (break-even)
//   - Value = Price * Shares, Cost = AvgCost * Shares
//   - Gain = TotalValue - TotalCost
//   - Gain % = Gain / TotalCost * 100, or 0 when TotalCost is 0
//   - Allocation % = Value / TotalValue * 100, or 0 when TotalValue is 0
//
// Valuate keeps no state: it is re-run over the full holding list after every change.
func Valuate(holdings []*domain.Holding) Portfolio {
	values := make([]decimal.Decimal, len(holdings))
	totalValue := decimal.Zero
	totalCost := decimal.Zero

	for i, h := range holdings {
		values[i] = h.EffectivePrice().Mul(h.Shares)
		totalValue = totalValue.Add(values[i])
		totalCost = totalCost.Add(h.AvgCost.Mul(h.Shares))
	}

	totalGain := totalValue.Sub(totalCost)

	allocation := make([]Allocation, 0, len(holdings))
	for i, h := range holdings {
		allocation = append(allocation, Allocation{
			HoldingID:  h.ID,
			Symbol:     h.Symbol,
			Value:      values[i],
			Percentage: percentOf(values[i], totalValue),
		})
	}

	return Portfolio{
		TotalValue:       totalValue,
		TotalCost:        totalCost,
		TotalGain:        totalGain,
		TotalGainPercent: percentOf(totalGain, totalCost),
		HoldingsCount:    len(holdings),
		Allocation:       allocation,
	}
}

// percentOf returns part / whole * 100, guarded to 0 when whole is not positive
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}
