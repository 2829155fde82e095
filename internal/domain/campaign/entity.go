package campaign

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValueRequired       = errors.New("discount value is required for this kind")
	ErrValueOutOfRange     = errors.New("percentage value must be between 0 and 100")
	ErrValueNotPositive    = errors.New("discount value must be positive")
	ErrTargetsRequired     = errors.New("target set is required for this scope")
	ErrMinAmountRequired   = errors.New("minimum amount is mandatory for cart scope")
	ErrNegativeMinAmount   = errors.New("minimum amount cannot be negative")
	ErrNegativeMaxDiscount = errors.New("maximum discount cannot be negative")
	ErrInvalidWindow       = errors.New("end date must be after start date")
	ErrNegativeUsageLimit  = errors.New("usage limit must be positive")
)

// Campaign is a discount or shipping-waiver rule with an eligibility window
// and scope. A campaign with a code is coupon-gated; without one it applies
// automatically.
type Campaign struct {
	id               uuid.UUID
	name             string
	kind             Kind
	scope            Scope
	value            *decimal.Decimal
	code             *Code
	minAmount        *decimal.Decimal
	maxDiscount      *decimal.Decimal
	targetCategories []uuid.UUID
	targetProducts   []uuid.UUID
	usageLimit       *int32
	usageCount       int32
	startsAt         time.Time
	endsAt           time.Time
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCampaign validates the kind/scope pairing rules structurally: value is
// required unless kind is free_shipping, targets must be non-empty for their
// scope, and min amount is mandatory for cart scope.
func NewCampaign(
	id uuid.UUID,
	name string,
	kind Kind,
	scope Scope,
	value *decimal.Decimal,
	code *Code,
	minAmount *decimal.Decimal,
	maxDiscount *decimal.Decimal,
	targetCategories []uuid.UUID,
	targetProducts []uuid.UUID,
	usageLimit *int32,
	startsAt, endsAt time.Time,
	active bool,
) (*Campaign, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}

	switch kind {
	case KindFreeShipping:
		// value carries no meaning for a shipping waiver
		value = nil
	case KindPercentage:
		if value == nil {
			return nil, ErrValueRequired
		}
		if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
			return nil, ErrValueOutOfRange
		}
	case KindFixed:
		if value == nil {
			return nil, ErrValueRequired
		}
		if !value.IsPositive() {
			return nil, ErrValueNotPositive
		}
	}

	switch scope {
	case ScopeCategory:
		if len(targetCategories) == 0 {
			return nil, ErrTargetsRequired
		}
	case ScopeProduct:
		if len(targetProducts) == 0 {
			return nil, ErrTargetsRequired
		}
	case ScopeCart:
		if minAmount == nil {
			return nil, ErrMinAmountRequired
		}
	}

	if minAmount != nil && minAmount.IsNegative() {
		return nil, ErrNegativeMinAmount
	}
	if maxDiscount != nil && maxDiscount.IsNegative() {
		return nil, ErrNegativeMaxDiscount
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidWindow
	}
	if usageLimit != nil && *usageLimit <= 0 {
		return nil, ErrNegativeUsageLimit
	}

	return &Campaign{
		id:               id,
		name:             name,
		kind:             kind,
		scope:            scope,
		value:            value,
		code:             code,
		minAmount:        minAmount,
		maxDiscount:      maxDiscount,
		targetCategories: targetCategories,
		targetProducts:   targetProducts,
		usageLimit:       usageLimit,
		startsAt:         startsAt,
		endsAt:           endsAt,
		active:           active,
	}, nil
}

// ReconstructCampaign rebuilds a campaign from persisted state without
// re-running creation validation.
func ReconstructCampaign(
	id uuid.UUID,
	name string,
	kind Kind,
	scope Scope,
	value *decimal.Decimal,
	code *Code,
	minAmount *decimal.Decimal,
	maxDiscount *decimal.Decimal,
	targetCategories []uuid.UUID,
	targetProducts []uuid.UUID,
	usageLimit *int32,
	usageCount int32,
	startsAt, endsAt time.Time,
	active bool,
	createdAt, updatedAt time.Time,
) *Campaign {
	return &Campaign{
		id:               id,
		name:             name,
		kind:             kind,
		scope:            scope,
		value:            value,
		code:             code,
		minAmount:        minAmount,
		maxDiscount:      maxDiscount,
		targetCategories: targetCategories,
		targetProducts:   targetProducts,
		usageLimit:       usageLimit,
		usageCount:       usageCount,
		startsAt:         startsAt,
		endsAt:           endsAt,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// IsCouponGated reports whether the buyer must enter a code for this
// campaign to apply.
func (c *Campaign) IsCouponGated() bool {
	return c.code != nil
}

// IsAutomatic reports whether the campaign applies without user action.
func (c *Campaign) IsAutomatic() bool {
	return c.code == nil
}

func (c *Campaign) IsFreeShipping() bool {
	return c.kind == KindFreeShipping
}

// HasUsageHeadroom reports whether the redemption cap still allows use.
func (c *Campaign) HasUsageHeadroom() bool {
	return c.usageLimit == nil || c.usageCount < *c.usageLimit
}

func (c *Campaign) ID() uuid.UUID                 { return c.id }
func (c *Campaign) Name() string                  { return c.name }
func (c *Campaign) Kind() Kind                    { return c.kind }
func (c *Campaign) Scope() Scope                  { return c.scope }
func (c *Campaign) Value() *decimal.Decimal       { return c.value }
func (c *Campaign) Code() *Code                   { return c.code }
func (c *Campaign) MinAmount() *decimal.Decimal   { return c.minAmount }
func (c *Campaign) MaxDiscount() *decimal.Decimal { return c.maxDiscount }
func (c *Campaign) TargetCategories() []uuid.UUID { return c.targetCategories }
func (c *Campaign) TargetProducts() []uuid.UUID   { return c.targetProducts }
func (c *Campaign) UsageLimit() *int32            { return c.usageLimit }
func (c *Campaign) UsageCount() int32             { return c.usageCount }
func (c *Campaign) StartsAt() time.Time           { return c.startsAt }
func (c *Campaign) EndsAt() time.Time             { return c.endsAt }
func (c *Campaign) IsActive() bool                { return c.active }
func (c *Campaign) CreatedAt() time.Time          { return c.createdAt }
func (c *Campaign) UpdatedAt() time.Time          { return c.updatedAt }
