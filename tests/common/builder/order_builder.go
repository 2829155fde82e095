//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/queries"
)

type OrderBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Lines       []queries.OrderLineView
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
	CouponCode  *string
	CampaignID  *uuid.UUID
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Lines: []queries.OrderLineView{
			{
				ProductID:  uuid.New(),
				CategoryID: uuid.New(),
				UnitPrice:  decimal.RequireFromString("49.90"),
				Quantity:   2,
			},
		},
		Subtotal:    decimal.RequireFromString("99.80"),
		Discount:    decimal.Zero,
		ShippingFee: decimal.RequireFromString("89.90"),
		Total:       decimal.RequireFromString("189.70"),
		CreatedAt:   time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	b.UserID = id
	return b
}

func (b *OrderBuilder) BuildViewQuery() *queries.OrderView {
	return &queries.OrderView{
		ID:          b.ID,
		UserID:      b.UserID,
		Lines:       b.Lines,
		Subtotal:    b.Subtotal,
		Discount:    b.Discount,
		ShippingFee: b.ShippingFee,
		Total:       b.Total,
		CouponCode:  b.CouponCode,
		CampaignID:  b.CampaignID,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:        b.ID,
		Total:     b.Total,
		ItemCount: len(b.Lines),
		CreatedAt: b.CreatedAt,
	}
}
