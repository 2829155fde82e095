package campaign

import (
	"errors"
	"time"

	"cosme-store/internal/domain/cart"
)

var (
	ErrNotYetActive  = errors.New("campaign has not started")
	ErrExpired       = errors.New("campaign has expired")
	ErrInactive      = errors.New("campaign is switched off")
	ErrExhausted     = errors.New("campaign usage limit reached")
	ErrMinimumNotMet = errors.New("cart subtotal below campaign minimum")
	ErrNoMatch       = errors.New("no cart item matches campaign targets")
)

// IsLiveAt reports whether the campaign can apply at all at the given
// instant: manually switched on, inside its [startsAt, endsAt) window, and
// with redemption headroom left.
func (c *Campaign) IsLiveAt(now time.Time) bool {
	return c.LivenessAt(now) == nil
}

// LivenessAt returns nil when the campaign is live at now, or the specific
// reason it is not.
func (c *Campaign) LivenessAt(now time.Time) error {
	if !c.active {
		return ErrInactive
	}
	if now.Before(c.startsAt) {
		return ErrNotYetActive
	}
	if !now.Before(c.endsAt) {
		return ErrExpired
	}
	if !c.HasUsageHeadroom() {
		return ErrExhausted
	}
	return nil
}

// EligibleFor reports whether the campaign applies to the given cart at now.
// Pure function of its inputs; safe to call repeatedly during one evaluation
// pass.
func (c *Campaign) EligibleFor(snapshot cart.Snapshot, now time.Time) bool {
	return c.EligibilityFor(snapshot, now) == nil
}

// EligibilityFor returns nil when the campaign applies to the cart, or the
// specific ineligibility reason. Liveness is checked first, then the scope
// predicate, so a buyer entering an expired coupon learns it expired rather
// than that the cart is short.
func (c *Campaign) EligibilityFor(snapshot cart.Snapshot, now time.Time) error {
	if err := c.LivenessAt(now); err != nil {
		return err
	}

	switch c.scope {
	case ScopeCategory:
		if !snapshot.HasAnyCategory(c.targetCategories) {
			return ErrNoMatch
		}
	case ScopeProduct:
		if !snapshot.HasAnyProduct(c.targetProducts) {
			return ErrNoMatch
		}
	}

	if !c.meetsMinimum(snapshot) {
		return ErrMinimumNotMet
	}
	return nil
}

func (c *Campaign) meetsMinimum(snapshot cart.Snapshot) bool {
	if c.minAmount == nil {
		return true
	}
	return snapshot.Subtotal().GreaterThanOrEqual(*c.minAmount)
}
