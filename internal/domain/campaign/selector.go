package campaign

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/cart"
)

// ErrCodeNotFound is returned when an entered code matches no coupon-gated
// campaign.
var ErrCodeNotFound = errors.New("coupon code not recognized")

// Selection is the outcome of evaluating all campaigns against a cart: at
// most one campaign applies, contributing a merchandise discount amount and
// possibly a shipping waiver.
type Selection struct {
	CampaignID   uuid.UUID
	Code         *Code
	Amount       decimal.Decimal
	FreeShipping bool
}

// NoDiscount is the zero outcome: no campaign applied.
func NoDiscount() Selection {
	return Selection{Amount: decimal.Zero}
}

// Applied reports whether any campaign was selected.
func (s Selection) Applied() bool {
	return s.CampaignID != uuid.Nil
}

// Select picks the single campaign to apply to the cart.
//
// Automatic campaigns compete on discount amount: the largest wins, ties
// broken by lowest campaign ID for deterministic results. An explicitly
// entered valid coupon always overrides the best automatic campaign, even
// when the automatic one would grant more: the buyer's intentional action
// takes priority. An entered code that is unknown or ineligible is an
// error with the specific reason, never a silent fallback. No eligible
// campaign and no entered code is simply no discount.
func Select(campaigns []*Campaign, snapshot cart.Snapshot, enteredCode *string, now time.Time) (Selection, error) {
	if enteredCode != nil {
		coupon := findByCode(campaigns, *enteredCode)
		if coupon == nil {
			return NoDiscount(), ErrCodeNotFound
		}
		if err := coupon.EligibilityFor(snapshot, now); err != nil {
			return NoDiscount(), err
		}
		return selectionOf(coupon, snapshot), nil
	}

	best := bestAutomatic(campaigns, snapshot, now)
	if best == nil {
		return NoDiscount(), nil
	}
	return selectionOf(best, snapshot), nil
}

func findByCode(campaigns []*Campaign, input string) *Campaign {
	for _, c := range campaigns {
		if c.IsCouponGated() && c.code.Matches(input) {
			return c
		}
	}
	return nil
}

func bestAutomatic(campaigns []*Campaign, snapshot cart.Snapshot, now time.Time) *Campaign {
	var (
		best       *Campaign
		bestAmount decimal.Decimal
	)
	for _, c := range campaigns {
		if !c.IsAutomatic() || !c.EligibleFor(snapshot, now) {
			continue
		}
		amount := c.Discount(snapshot)
		if best == nil || amount.GreaterThan(bestAmount) ||
			(amount.Equal(bestAmount) && c.id.String() < best.id.String()) {
			best = c
			bestAmount = amount
		}
	}
	return best
}

func selectionOf(c *Campaign, snapshot cart.Snapshot) Selection {
	return Selection{
		CampaignID:   c.id,
		Code:         c.code,
		Amount:       c.Discount(snapshot),
		FreeShipping: c.IsFreeShipping(),
	}
}
