package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/usecase/commands"
)

type CreateCampaignRequest struct {
	Name             string           `json:"name" binding:"required"`
	Kind             string           `json:"kind" binding:"required"`
	Scope            string           `json:"scope" binding:"required"`
	Value            *decimal.Decimal `json:"value,omitempty"`
	Code             *string          `json:"code,omitempty"`
	MinAmount        *decimal.Decimal `json:"min_amount,omitempty"`
	MaxDiscount      *decimal.Decimal `json:"max_discount,omitempty"`
	TargetCategories []uuid.UUID      `json:"target_categories,omitempty"`
	TargetProducts   []uuid.UUID      `json:"target_products,omitempty"`
	UsageLimit       *int32           `json:"usage_limit,omitempty"`
	StartsAt         time.Time        `json:"starts_at" binding:"required"`
	EndsAt           time.Time        `json:"ends_at" binding:"required"`
	Active           bool             `json:"active"`
}

type UpdateCampaignRequest struct {
	Name             string           `json:"name" binding:"required"`
	Kind             string           `json:"kind" binding:"required"`
	Scope            string           `json:"scope" binding:"required"`
	Value            *decimal.Decimal `json:"value,omitempty"`
	Code             *string          `json:"code,omitempty"`
	MinAmount        *decimal.Decimal `json:"min_amount,omitempty"`
	MaxDiscount      *decimal.Decimal `json:"max_discount,omitempty"`
	TargetCategories []uuid.UUID      `json:"target_categories,omitempty"`
	TargetProducts   []uuid.UUID      `json:"target_products,omitempty"`
	UsageLimit       *int32           `json:"usage_limit,omitempty"`
	StartsAt         time.Time        `json:"starts_at" binding:"required"`
	EndsAt           time.Time        `json:"ends_at" binding:"required"`
}

func (r CreateCampaignRequest) ToParams() commands.CreateCampaignParams {
	return commands.CreateCampaignParams{
		Name:             r.Name,
		Kind:             r.Kind,
		Scope:            r.Scope,
		Value:            r.Value,
		Code:             normalizeCouponCode(r.Code),
		MinAmount:        r.MinAmount,
		MaxDiscount:      r.MaxDiscount,
		TargetCategories: r.TargetCategories,
		TargetProducts:   r.TargetProducts,
		UsageLimit:       r.UsageLimit,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
		Active:           r.Active,
	}
}

func (r UpdateCampaignRequest) ToParams() commands.UpdateCampaignParams {
	return commands.UpdateCampaignParams{
		Name:             r.Name,
		Kind:             r.Kind,
		Scope:            r.Scope,
		Value:            r.Value,
		Code:             normalizeCouponCode(r.Code),
		MinAmount:        r.MinAmount,
		MaxDiscount:      r.MaxDiscount,
		TargetCategories: r.TargetCategories,
		TargetProducts:   r.TargetProducts,
		UsageLimit:       r.UsageLimit,
		StartsAt:         r.StartsAt,
		EndsAt:           r.EndsAt,
	}
}
