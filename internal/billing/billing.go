// Package billing implements the derived-calculation model: pure, total
// functions that combine raw line items, tiered pricing and the
// adjustment fields into a final balance.
//
// Every function here is side-effect free and never fails. Non-finite
// inputs (NaN, ±Inf) coerce to 0, the same way the form layer coerces
// unparsable numeric input. Intermediate values are never rounded;
// rounding happens only at display time in FormatCurrency.
package billing

import (
	"math"
	"sort"

	"indiebyll/pkg/models"
)

// Totals is the full breakdown produced from an item list and an
// adjustment set. BalanceDue is the figure the client actually owes.
type Totals struct {
	Subtotal      float64
	AfterDiscount float64
	Tax           float64
	GrandTotal    float64
	BalanceDue    float64
}

// LineAmount returns quantity times unit price for a single item.
// Negative quantities and prices are passed through unclamped.
func LineAmount(item models.LineItem) float64 {
	return num(item.Quantity) * num(item.UnitPrice)
}

// Subtotal sums LineAmount over all items.
func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineAmount(item)
	}
	return sum
}

// TierRate returns the per-unit rate for the given quantity, taken from
// the first tier whose range contains it. Tiers are matched in
// ascending MinQty order (stable, so insertion order breaks ties among
// overlapping ranges). A nil MaxQty means the range is unbounded above.
// Returns 0 when no tier matches or quantity is not positive.
func TierRate(quantity float64, tiers []models.PricingTier) float64 {
	quantity = num(quantity)
	if quantity <= 0 || len(tiers) == 0 {
		return 0
	}
	return matchRate(quantity, orderTiers(tiers))
}

// GraduatedTotal prices each unit from 1 up to quantity at its own tier
// rate and returns the sum. Units that fall outside every tier
// contribute nothing. The editor divides this by the quantity to derive
// an average unit price when tiered pricing is enabled.
func GraduatedTotal(quantity float64, tiers []models.PricingTier) float64 {
	units := math.Floor(num(quantity))
	if units < 1 || len(tiers) == 0 {
		return 0
	}
	ordered := orderTiers(tiers)

	// Unit numbers where the winning tier can change: each tier starts
	// mattering at ceil(min) and stops after floor(max).
	bounds := []float64{1, units + 1}
	for _, tier := range ordered {
		if b := math.Ceil(num(tier.MinQty)); b > 1 && b <= units {
			bounds = append(bounds, b)
		}
		if tier.MaxQty != nil {
			if b := math.Floor(num(*tier.MaxQty)) + 1; b > 1 && b <= units {
				bounds = append(bounds, b)
			}
		}
	}
	sort.Float64s(bounds)

	// Between consecutive bounds every unit matches the same tier, so
	// price each run as a block rather than unit by unit.
	var total float64
	for i := 0; i < len(bounds)-1; i++ {
		lo, hi := bounds[i], bounds[i+1]
		if hi <= lo {
			continue
		}
		total += matchRate(lo, ordered) * (hi - lo)
	}
	return total
}

// Compute produces the totals breakdown:
//
//	subtotal      = Σ quantity×unitPrice
//	afterDiscount = subtotal − discount       (may go negative)
//	tax           = afterDiscount × rate/100  (0 when tax is disabled)
//	grandTotal    = afterDiscount + tax
//	balanceDue    = grandTotal + previous due − advance received
func Compute(items []models.LineItem, adj models.AdjustmentSet) Totals {
	t := Totals{Subtotal: Subtotal(items)}
	t.AfterDiscount = t.Subtotal - num(adj.DiscountAmount)
	if adj.TaxEnabled {
		t.Tax = t.AfterDiscount * (num(adj.TaxRatePercent) / 100)
	}
	t.GrandTotal = t.AfterDiscount + t.Tax
	t.BalanceDue = t.GrandTotal + num(adj.PreviousBalanceDue) - num(adj.AdvanceReceived)
	return t
}

func orderTiers(tiers []models.PricingTier) []models.PricingTier {
	ordered := append([]models.PricingTier(nil), tiers...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return num(ordered[i].MinQty) < num(ordered[j].MinQty)
	})
	return ordered
}

func matchRate(q float64, ordered []models.PricingTier) float64 {
	for _, tier := range ordered {
		max := math.Inf(1)
		if tier.MaxQty != nil {
			max = num(*tier.MaxQty)
		}
		if q >= num(tier.MinQty) && q <= max {
			return num(tier.Rate)
		}
	}
	return 0
}

// num coerces non-finite values to 0.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
