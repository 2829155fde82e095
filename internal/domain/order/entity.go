package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/pricing"
)

var (
	ErrNoItems       = errors.New("order must have at least one item")
	ErrNegativeTotal = errors.New("order total cannot be negative")
)

// Line is an order line frozen at purchase time. Prices are copied from the
// cart snapshot so later catalog edits never reprice past orders.
type Line struct {
	ProductID  uuid.UUID
	CategoryID uuid.UUID
	UnitPrice  decimal.Decimal
	Quantity   int
}

// Order is the immutable purchase snapshot persisted at checkout. Only
// status/tracking fields may change later; the pricing figures never do.
type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	lines       []Line
	subtotal    decimal.Decimal
	discount    decimal.Decimal
	shippingFee decimal.Decimal
	total       decimal.Decimal
	couponCode  *string
	campaignID  *uuid.UUID
	createdAt   time.Time
}

// NewOrder freezes the cart and the aggregated totals into a new order.
func NewOrder(
	userID uuid.UUID,
	snapshot cart.Snapshot,
	totals pricing.Totals,
	couponCode *string,
	campaignID *uuid.UUID,
) (*Order, error) {
	if snapshot.IsEmpty() {
		return nil, ErrNoItems
	}
	if totals.Total.IsNegative() {
		return nil, ErrNegativeTotal
	}

	items := snapshot.Items()
	lines := make([]Line, len(items))
	for i, li := range items {
		lines[i] = Line{
			ProductID:  li.ProductID,
			CategoryID: li.CategoryID,
			UnitPrice:  li.UnitPrice,
			Quantity:   li.Quantity,
		}
	}

	return &Order{
		id:          uuid.New(),
		userID:      userID,
		lines:       lines,
		subtotal:    totals.Subtotal,
		discount:    totals.Discount,
		shippingFee: totals.ShippingFee,
		total:       totals.Total,
		couponCode:  couponCode,
		campaignID:  campaignID,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	lines []Line,
	subtotal, discount, shippingFee, total decimal.Decimal,
	couponCode *string,
	campaignID *uuid.UUID,
	createdAt time.Time,
) *Order {
	return &Order{
		id:          id,
		userID:      userID,
		lines:       lines,
		subtotal:    subtotal,
		discount:    discount,
		shippingFee: shippingFee,
		total:       total,
		couponCode:  couponCode,
		campaignID:  campaignID,
		createdAt:   createdAt,
	}
}

// UsedCampaign reports whether a campaign was applied and must have its
// usage recorded on successful persistence.
func (o *Order) UsedCampaign() bool {
	return o.campaignID != nil
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) Subtotal() decimal.Decimal    { return o.subtotal }
func (o *Order) Discount() decimal.Decimal    { return o.discount }
func (o *Order) ShippingFee() decimal.Decimal { return o.shippingFee }
func (o *Order) Total() decimal.Decimal       { return o.total }
func (o *Order) CouponCode() *string          { return o.couponCode }
func (o *Order) CampaignID() *uuid.UUID       { return o.campaignID }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
