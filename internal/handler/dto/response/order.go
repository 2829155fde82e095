package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/queries"
)

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	Lines       []OrderLineResponse `json:"lines"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Discount    decimal.Decimal     `json:"discount"`
	ShippingFee decimal.Decimal     `json:"shippingFee"`
	Total       decimal.Decimal     `json:"total"`
	CouponCode  *string             `json:"couponCode,omitempty"`
	CampaignID  *uuid.UUID          `json:"campaignId,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type OrderLineResponse struct {
	ProductID  uuid.UUID       `json:"productId"`
	CategoryID uuid.UUID       `json:"categoryId"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
}

type OrderListResponse struct {
	ID        uuid.UUID       `json:"id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(rm.Lines))
	for i, line := range rm.Lines {
		lines[i] = OrderLineResponse{
			ProductID:  line.ProductID,
			CategoryID: line.CategoryID,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		}
	}

	return &OrderResponse{
		ID:          rm.ID,
		UserID:      rm.UserID,
		Lines:       lines,
		Subtotal:    rm.Subtotal,
		Discount:    rm.Discount,
		ShippingFee: rm.ShippingFee,
		Total:       rm.Total,
		CouponCode:  rm.CouponCode,
		CampaignID:  rm.CampaignID,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:        rm.ID,
		Total:     rm.Total,
		ItemCount: rm.ItemCount,
		CreatedAt: rm.CreatedAt,
	}
}
