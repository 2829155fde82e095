package pricing

import (
	"github.com/shopspring/decimal"
)

// Totals is the composed checkout price. Total is the single authoritative
// value persisted on the order; the intermediate figures are kept for
// display only.
type Totals struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Aggregate composes subtotal, discount, and shipping fee into the payable
// total. The merchandise portion never goes below zero, even if a discount
// computation error would otherwise push it there. All figures are rounded
// half-up to 2 decimal places here, the persistence boundary.
func Aggregate(subtotal, discount, shippingFee decimal.Decimal) Totals {
	merchandise := subtotal.Sub(discount)
	if merchandise.IsNegative() {
		merchandise = decimal.Zero
	}
	return Totals{
		Subtotal:    subtotal.Round(2),
		Discount:    discount.Round(2),
		ShippingFee: shippingFee.Round(2),
		Total:       merchandise.Add(shippingFee).Round(2),
	}
}
