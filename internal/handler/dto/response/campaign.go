package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/queries"
)

type CampaignResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Kind             string           `json:"kind"`
	Scope            string           `json:"scope"`
	Value            *decimal.Decimal `json:"value,omitempty"`
	Code             *string          `json:"code,omitempty"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty"`
	MaxDiscount      *decimal.Decimal `json:"maxDiscount,omitempty"`
	TargetCategories []uuid.UUID      `json:"targetCategories,omitempty"`
	TargetProducts   []uuid.UUID      `json:"targetProducts,omitempty"`
	UsageLimit       *int32           `json:"usageLimit,omitempty"`
	UsageCount       int32            `json:"usageCount"`
	StartsAt         time.Time        `json:"startsAt"`
	EndsAt           time.Time        `json:"endsAt"`
	Active           bool             `json:"active"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CampaignBannerResponse omits codes and limits: it is the public shape
// shown to buyers.
type CampaignBannerResponse struct {
	ID    uuid.UUID        `json:"id"`
	Title string           `json:"title"`
	Kind  string           `json:"kind"`
	Value *decimal.Decimal `json:"value,omitempty"`
}

func FromCampaignView(rm *queries.CampaignView) *CampaignResponse {
	return &CampaignResponse{
		ID:               rm.ID,
		Name:             rm.Name,
		Kind:             rm.Kind,
		Scope:            rm.Scope,
		Value:            rm.Value,
		Code:             rm.Code,
		MinAmount:        rm.MinAmount,
		MaxDiscount:      rm.MaxDiscount,
		TargetCategories: rm.TargetCategories,
		TargetProducts:   rm.TargetProducts,
		UsageLimit:       rm.UsageLimit,
		UsageCount:       rm.UsageCount,
		StartsAt:         rm.StartsAt,
		EndsAt:           rm.EndsAt,
		Active:           rm.Active,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromCampaignBannerItem(rm *queries.CampaignBannerItem) *CampaignBannerResponse {
	return &CampaignBannerResponse{
		ID:    rm.ID,
		Title: rm.Title,
		Kind:  rm.Kind,
		Value: rm.Value,
	}
}
