package request

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
)

// CartItemRequest is one client-held cart line. Prices are sent by the
// storefront and re-validated by the pricing pass; they are never trusted
// for totals shown to other users.
type CartItemRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
}

type QuoteCartRequest struct {
	Items      []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string           `json:"coupon_code,omitempty"`
}

type PlaceOrderRequest struct {
	Items      []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string           `json:"coupon_code,omitempty"`
}

func (r QuoteCartRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

func (r QuoteCartRequest) ToQueryItems() []queries.CartItemInput {
	items := make([]queries.CartItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = queries.CartItemInput{
			ProductID:  item.ProductID,
			CategoryID: item.CategoryID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}
	return items
}

func (r PlaceOrderRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

func (r PlaceOrderRequest) ToCommandItems() []commands.CartItemParams {
	items := make([]commands.CartItemParams, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.CartItemParams{
			ProductID:  item.ProductID,
			CategoryID: item.CategoryID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}
	return items
}

func normalizeCouponCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
