package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type CampaignView struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Kind             string           `json:"kind"`
	Scope            string           `json:"scope"`
	Value            *decimal.Decimal `json:"value,omitempty"`
	Code             *string          `json:"code,omitempty"`
	MinAmount        *decimal.Decimal `json:"min_amount,omitempty"`
	MaxDiscount      *decimal.Decimal `json:"max_discount,omitempty"`
	TargetCategories []uuid.UUID      `json:"target_categories,omitempty"`
	TargetProducts   []uuid.UUID      `json:"target_products,omitempty"`
	UsageLimit       *int32           `json:"usage_limit,omitempty"`
	UsageCount       int32            `json:"usage_count"`
	StartsAt         time.Time        `json:"starts_at"`
	EndsAt           time.Time        `json:"ends_at"`
	Active           bool             `json:"active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CampaignBannerItem is the minimal shape consumed by cart and header
// banners: only what a storefront needs to advertise a live promotion.
type CampaignBannerItem struct {
	ID    uuid.UUID        `json:"id"`
	Title string           `json:"title"`
	Kind  string           `json:"kind"`
	Value *decimal.Decimal `json:"value,omitempty"`
}

type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Lines       []OrderLineView `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
	CouponCode  *string         `json:"coupon_code,omitempty"`
	CampaignID  *uuid.UUID      `json:"campaign_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderLineView struct {
	ProductID  uuid.UUID       `json:"product_id"`
	CategoryID uuid.UUID       `json:"category_id"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

type OrderListItem struct {
	ID        uuid.UUID       `json:"id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
}

// QuoteView is the recomputed cart price shown before checkout. It mirrors
// the order figures but is never persisted.
type QuoteView struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ShippingFee  decimal.Decimal `json:"shipping_fee"`
	Total        decimal.Decimal `json:"total"`
	CampaignID   *uuid.UUID      `json:"campaign_id,omitempty"`
	CouponCode   *string         `json:"coupon_code,omitempty"`
	FreeShipping bool            `json:"free_shipping"`
}
