package campaign

import (
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/cart"
)

var hundred = decimal.NewFromInt(100)

// Discount computes the merchandise discount this campaign grants on the
// given cart. Callers must have confirmed eligibility first. A free-shipping
// campaign grants no merchandise discount; its effect is the shipping waiver
// flag, never a subtractive amount.
//
// Percentage and fixed discounts apply to the scope-matching subtotal only,
// so a category campaign cannot discount unrelated items. Results are
// rounded half-up to 2 decimal places at this boundary, not mid-calculation.
func (c *Campaign) Discount(snapshot cart.Snapshot) decimal.Decimal {
	switch c.kind {
	case KindPercentage:
		amount := c.eligibleSubtotal(snapshot).Mul(*c.value).Div(hundred)
		if c.maxDiscount != nil {
			amount = decimal.Min(amount, *c.maxDiscount)
		}
		return floorAtZero(amount).Round(2)
	case KindFixed:
		amount := decimal.Min(*c.value, c.eligibleSubtotal(snapshot))
		return floorAtZero(amount).Round(2)
	default:
		return decimal.Zero
	}
}

// eligibleSubtotal is the portion of the cart this campaign's discount can
// touch.
func (c *Campaign) eligibleSubtotal(snapshot cart.Snapshot) decimal.Decimal {
	switch c.scope {
	case ScopeCategory:
		return snapshot.SubtotalForCategories(c.targetCategories)
	case ScopeProduct:
		return snapshot.SubtotalForProducts(c.targetProducts)
	default:
		return snapshot.Subtotal()
	}
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
