package pricing

import (
	"github.com/shopspring/decimal"
)

// ShippingRates is the store-wide delivery pricing: a flat fee waived above
// the free-shipping threshold.
type ShippingRates struct {
	FlatFee               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// ShippingFee computes the delivery cost for a cart subtotal. The fee is
// zero above the threshold or under an applied free-shipping campaign;
// otherwise the flat fee applies. Must be recomputed whenever the subtotal
// changes, since the threshold crossing is dynamic.
func ShippingFee(subtotal decimal.Decimal, rates ShippingRates, freeShippingCampaign bool) decimal.Decimal {
	if freeShippingCampaign {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(rates.FreeShippingThreshold) {
		return decimal.Zero
	}
	return rates.FlatFee.Round(2)
}
