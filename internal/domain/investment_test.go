package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHolding_EffectivePrice(t *testing.T) {
	price := decimal.RequireFromString("190.25")

	withPrice := Holding{AvgCost: decimal.NewFromInt(150), CurrentPrice: &price}
	assert.True(t, withPrice.EffectivePrice().Equal(price))

	// Break-even when no price is known
	withoutPrice := Holding{AvgCost: decimal.NewFromInt(150)}
	assert.True(t, withoutPrice.EffectivePrice().Equal(decimal.NewFromInt(150)))
}

func TestHolding_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		holding Holding
		errMsg  string
	}{
		{"Valid holding", Holding{Symbol: "VOO", Shares: decimal.NewFromInt(10), AvgCost: decimal.NewFromInt(400)}, ""},
		{"Lower case symbol", Holding{Symbol: "voo", Shares: decimal.NewFromInt(1)}, "symbol must be upper case"},
		{"Zero shares", Holding{Symbol: "VOO", Shares: decimal.Zero}, "shares must be positive"},
		{"Negative cost", Holding{Symbol: "VOO", Shares: decimal.NewFromInt(1), AvgCost: negative}, "average cost must not be negative"},
		{"Negative price", Holding{Symbol: "VOO", Shares: decimal.NewFromInt(1), CurrentPrice: &negative}, "current price must not be negative"},
		{"Symbol too long", Holding{Symbol: "ABCDEFGHIJK", Shares: decimal.NewFromInt(1)}, "symbol must be at most 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.holding.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl "))
}
