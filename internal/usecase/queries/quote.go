package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/usecase/shared"
)

type CartItemInput struct {
	ProductID  uuid.UUID
	CategoryID uuid.UUID
	UnitPrice  decimal.Decimal
	Quantity   int
}

type QuoteQueries interface {
	// QuoteCart reprices a client cart: subtotal, best discount, shipping
	// fee, and total. Read-only; usage counters are untouched.
	QuoteCart(ctx context.Context, items []CartItemInput, couponCode *string) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	pricer *shared.CartPricer
}

func NewQuoteQueries(pricer *shared.CartPricer) QuoteQueries {
	return &quoteQueriesImpl{pricer: pricer}
}

func (q *quoteQueriesImpl) QuoteCart(ctx context.Context, items []CartItemInput, couponCode *string) (*QuoteView, error) {
	lineItems := make([]cart.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = cart.LineItem{
			ProductID:  item.ProductID,
			CategoryID: item.CategoryID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	snapshot, err := cart.NewSnapshot(lineItems)
	if err != nil {
		return nil, err
	}

	evaluation, err := q.pricer.Evaluate(ctx, snapshot, couponCode)
	if err != nil {
		return nil, err
	}

	view := &QuoteView{
		Subtotal:     evaluation.Totals.Subtotal,
		Discount:     evaluation.Totals.Discount,
		ShippingFee:  evaluation.Totals.ShippingFee,
		Total:        evaluation.Totals.Total,
		FreeShipping: evaluation.Selection.FreeShipping,
	}
	if evaluation.Selection.Applied() {
		id := evaluation.Selection.CampaignID
		view.CampaignID = &id
		if evaluation.Selection.Code != nil {
			code := evaluation.Selection.Code.String()
			view.CouponCode = &code
		}
	}
	return view, nil
}
