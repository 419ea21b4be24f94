package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinview/lazylist/internal/market"
)

// TestCoinCard tests the styled card contains every field.
func TestCoinCard(t *testing.T) {
	card := CoinCard(market.Coin{Symbol: "BTC", Name: "Bitcoin", Price: 67241.18, Change24h: 2.41})

	assert.Contains(t, card, "BTC")
	assert.Contains(t, card, "Bitcoin")
	assert.Contains(t, card, "$67,241.18")
	assert.Contains(t, card, "+2.41%")
}

// TestPlainCoinCard tests the unstyled card formatting.
func TestPlainCoinCard(t *testing.T) {
	tests := []struct {
		name string
		coin market.Coin
		want []string
	}{
		{
			name: "positive change with grouping",
			coin: market.Coin{Symbol: "ETH", Name: "Ethereum", Price: 3489.52, Change24h: 1.08},
			want: []string{"ETH", "Ethereum", "$3,489.52", "+1.08%"},
		},
		{
			name: "negative change",
			coin: market.Coin{Symbol: "DOGE", Name: "Dogecoin", Price: 0.1284, Change24h: -4.12},
			want: []string{"DOGE", "Dogecoin", "-4.12%"},
		},
		{
			name: "sub-unit price keeps four decimals",
			coin: market.Coin{Symbol: "ADA", Name: "Cardano", Price: 0.4381, Change24h: 3.57},
			want: []string{"$0.4381"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := PlainCoinCard(tt.coin)
			for _, want := range tt.want {
				assert.Contains(t, card, want)
			}
		})
	}
}

// TestFormatPrice tests the decimal-precision threshold.
func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$67,241.18", formatPrice(67241.18))
	assert.Equal(t, "$1.00", formatPrice(1.0))
	assert.Equal(t, "$0.9999", formatPrice(0.9999))
}
