package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		symbol string
		want   string
	}{
		{"plain", 200, "₹", "₹200.00"},
		{"rounds to two decimals", 99.999, "₹", "₹100.00"},
		{"thousands grouping", 1000, "$", "$1,000.00"},
		{"indian grouping", 100000, "₹", "₹1,00,000.00"},
		{"zero", 0, "€", "€0.00"},
		{"nan coerces to zero", math.NaN(), "₹", "₹0.00"},
		{"inf coerces to zero", math.Inf(1), "₹", "₹0.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCurrency(tc.amount, tc.symbol))
		})
	}
}
