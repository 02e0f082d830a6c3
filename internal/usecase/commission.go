package usecase

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// SplitRevenue converts attributable revenue into the platform commission and
// the vendor payout under the given commission percent. Both figures are
// rounded half-up to the cent. The vendor amount is clamped at zero so a
// malformed rate can never produce a negative payout.
func SplitRevenue(revenue, commissionPercent decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	commission := revenue.Mul(commissionPercent).Div(oneHundred).Round(2)
	vendor := revenue.Sub(commission).Round(2)
	if vendor.IsNegative() {
		vendor = decimal.Zero
	}

	return commission, vendor
}
