package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/queries"
)

type QuoteResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ShippingFee  decimal.Decimal `json:"shippingFee"`
	Total        decimal.Decimal `json:"total"`
	CampaignID   *uuid.UUID      `json:"campaignId,omitempty"`
	CouponCode   *string         `json:"couponCode,omitempty"`
	FreeShipping bool            `json:"freeShipping"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:     rm.Subtotal,
		Discount:     rm.Discount,
		ShippingFee:  rm.ShippingFee,
		Total:        rm.Total,
		CampaignID:   rm.CampaignID,
		CouponCode:   rm.CouponCode,
		FreeShipping: rm.FreeShipping,
	}
}
