package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"indiebyll/pkg/models"
)

func qty(v float64) *float64 { return &v }

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 200.0, LineAmount(models.LineItem{Quantity: 2, UnitPrice: 100}))
	assert.Equal(t, 0.0, LineAmount(models.LineItem{Quantity: 0, UnitPrice: 100}))
	// negatives pass through unclamped
	assert.Equal(t, -500.0, LineAmount(models.LineItem{Quantity: -5, UnitPrice: 100}))
	// non-finite input coerces to zero
	assert.Equal(t, 0.0, LineAmount(models.LineItem{Quantity: math.NaN(), UnitPrice: 100}))
}

func TestSubtotalSumsLineAmounts(t *testing.T) {
	items := []models.LineItem{
		{Quantity: 2, UnitPrice: 100},
		{Quantity: 1.5, UnitPrice: 80},
		{Quantity: 3, UnitPrice: 0.10},
	}
	var want float64
	for _, item := range items {
		want += item.Quantity * item.UnitPrice
	}
	assert.Equal(t, want, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestComputeSimpleInvoice(t *testing.T) {
	// Single line, no adjustments: the balance is just the subtotal.
	items := []models.LineItem{{Quantity: 2, UnitPrice: 100}}
	got := Compute(items, models.AdjustmentSet{})

	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 200.0, got.AfterDiscount)
	assert.Equal(t, 0.0, got.Tax)
	assert.Equal(t, 200.0, got.GrandTotal)
	assert.Equal(t, 200.0, got.BalanceDue)
}

func TestComputeWithAllAdjustments(t *testing.T) {
	items := []models.LineItem{{Quantity: 1, UnitPrice: 1000}}
	adj := models.AdjustmentSet{
		DiscountAmount:     100,
		TaxEnabled:         true,
		TaxRatePercent:     18,
		PreviousBalanceDue: 50,
		AdvanceReceived:    30,
	}
	got := Compute(items, adj)

	assert.InDelta(t, 900.0, got.AfterDiscount, 1e-9)
	assert.InDelta(t, 162.0, got.Tax, 1e-9)
	assert.InDelta(t, 1062.0, got.GrandTotal, 1e-9)
	assert.InDelta(t, 1082.0, got.BalanceDue, 1e-9)
}

func TestComputeDiscountCanGoNegative(t *testing.T) {
	items := []models.LineItem{{Quantity: 1, UnitPrice: 50}}
	got := Compute(items, models.AdjustmentSet{DiscountAmount: 80})
	assert.Equal(t, -30.0, got.AfterDiscount)
	assert.Equal(t, -30.0, got.BalanceDue)
}

func TestComputeTaxDisabledIgnoresRate(t *testing.T) {
	items := []models.LineItem{{Quantity: 1, UnitPrice: 100}}
	got := Compute(items, models.AdjustmentSet{TaxEnabled: false, TaxRatePercent: 18})
	assert.Equal(t, 0.0, got.Tax)
	assert.Equal(t, 100.0, got.BalanceDue)
}

func TestComputeIsIdempotent(t *testing.T) {
	items := []models.LineItem{
		{Quantity: 3, UnitPrice: 99.99},
		{Quantity: 7, UnitPrice: 0.01},
	}
	adj := models.AdjustmentSet{DiscountAmount: 12.5, TaxEnabled: true, TaxRatePercent: 18}

	first := Compute(items, adj)
	second := Compute(items, adj)
	assert.Equal(t, first, second)
}

func TestTierRate(t *testing.T) {
	tiers := []models.PricingTier{
		{MinQty: 1, MaxQty: qty(19), Rate: 79},
		{MinQty: 20, MaxQty: qty(27), Rate: 69},
	}

	tests := []struct {
		name     string
		quantity float64
		want     float64
	}{
		{"first tier", 10, 79},
		{"second tier", 25, 69},
		{"lower bound inclusive", 20, 69},
		{"upper bound inclusive", 27, 69},
		{"beyond all tiers", 28, 0},
		{"zero quantity", 0, 0},
		{"negative quantity", -3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TierRate(tc.quantity, tiers))
		})
	}
}

func TestTierRateUnboundedMax(t *testing.T) {
	tiers := []models.PricingTier{
		{MinQty: 1, MaxQty: qty(10), Rate: 100},
		{MinQty: 11, Rate: 90}, // no upper bound
	}
	assert.Equal(t, 90.0, TierRate(5000, tiers))
}

func TestTierRateOverlapPrefersLowestMin(t *testing.T) {
	// Overlapping ranges are not rejected; the tier with the lowest
	// MinQty wins, insertion order breaking exact ties.
	tiers := []models.PricingTier{
		{MinQty: 5, MaxQty: qty(30), Rate: 50},
		{MinQty: 1, MaxQty: qty(20), Rate: 80},
		{MinQty: 5, MaxQty: qty(30), Rate: 40},
	}
	assert.Equal(t, 80.0, TierRate(10, tiers))
	assert.Equal(t, 50.0, TierRate(25, tiers))
}

func TestTierRateNoTiers(t *testing.T) {
	assert.Equal(t, 0.0, TierRate(5, nil))
}

func TestGraduatedTotal(t *testing.T) {
	tiers := []models.PricingTier{
		{MinQty: 1, MaxQty: qty(19), Rate: 79},
		{MinQty: 20, MaxQty: qty(27), Rate: 69},
	}
	// 19 units at 79 plus 6 units at 69.
	assert.Equal(t, 19*79.0+6*69.0, GraduatedTotal(25, tiers))
	assert.Equal(t, 0.0, GraduatedTotal(0, tiers))
	assert.Equal(t, 0.0, GraduatedTotal(12, nil))

	// Only whole units are priced.
	assert.Equal(t, GraduatedTotal(25, tiers), GraduatedTotal(25.7, tiers))
}

func TestGraduatedTotalLargeQuantity(t *testing.T) {
	tiers := []models.PricingTier{
		{MinQty: 1, MaxQty: qty(19), Rate: 79},
		{MinQty: 20, Rate: 69},
	}
	// Runs in constant time per tier, not per unit.
	assert.Equal(t, 19*79.0+(1e9-19)*69.0, GraduatedTotal(1e9, tiers))
}
