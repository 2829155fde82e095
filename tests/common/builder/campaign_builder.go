//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/campaign"
	reqdto "cosme-store/internal/handler/dto/request"
	"cosme-store/internal/usecase/queries"
)

type CampaignBuilder struct {
	ID               uuid.UUID
	Name             string
	Kind             string
	Scope            string
	Value            *decimal.Decimal
	Code             *string
	MinAmount        *decimal.Decimal
	MaxDiscount      *decimal.Decimal
	TargetCategories []uuid.UUID
	TargetProducts   []uuid.UUID
	UsageLimit       *int32
	UsageCount       int32
	StartsAt         time.Time
	EndsAt           time.Time
	Active           bool
}

func NewCampaignBuilder() *CampaignBuilder {
	value := decimal.NewFromInt(10)
	now := time.Now()
	return &CampaignBuilder{
		ID:       uuid.New(),
		Name:     "Autumn Sale",
		Kind:     "percentage",
		Scope:    "all",
		Value:    &value,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(24 * time.Hour),
		Active:   true,
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

func (b *CampaignBuilder) WithID(id uuid.UUID) *CampaignBuilder {
	b.ID = id
	return b
}

func (b *CampaignBuilder) WithKind(kind string) *CampaignBuilder {
	b.Kind = kind
	return b
}

func (b *CampaignBuilder) WithScope(scope string) *CampaignBuilder {
	b.Scope = scope
	return b
}

func (b *CampaignBuilder) WithValue(value string) *CampaignBuilder {
	v := decimal.RequireFromString(value)
	b.Value = &v
	return b
}

func (b *CampaignBuilder) WithoutValue() *CampaignBuilder {
	b.Value = nil
	return b
}

func (b *CampaignBuilder) WithCode(code string) *CampaignBuilder {
	b.Code = &code
	return b
}

func (b *CampaignBuilder) WithMinAmount(amount string) *CampaignBuilder {
	v := decimal.RequireFromString(amount)
	b.MinAmount = &v
	return b
}

func (b *CampaignBuilder) WithMaxDiscount(amount string) *CampaignBuilder {
	v := decimal.RequireFromString(amount)
	b.MaxDiscount = &v
	return b
}

func (b *CampaignBuilder) WithTargetCategories(ids ...uuid.UUID) *CampaignBuilder {
	b.TargetCategories = ids
	return b
}

func (b *CampaignBuilder) WithTargetProducts(ids ...uuid.UUID) *CampaignBuilder {
	b.TargetProducts = ids
	return b
}

func (b *CampaignBuilder) WithUsage(limit, count int32) *CampaignBuilder {
	b.UsageLimit = &limit
	b.UsageCount = count
	return b
}

func (b *CampaignBuilder) WithWindow(startsAt, endsAt time.Time) *CampaignBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *CampaignBuilder) AsInactive() *CampaignBuilder {
	b.Active = false
	return b
}

func (b *CampaignBuilder) BuildDomain() (*campaign.Campaign, error) {
	kind, err := campaign.NewKind(b.Kind)
	if err != nil {
		return nil, err
	}
	scope, err := campaign.NewScope(b.Scope)
	if err != nil {
		return nil, err
	}

	var code *campaign.Code
	if b.Code != nil {
		parsed, err := campaign.NewCode(*b.Code)
		if err != nil {
			return nil, err
		}
		code = &parsed
	}

	return campaign.NewCampaign(b.ID, b.Name, kind, scope, b.Value, code, b.MinAmount,
		b.MaxDiscount, b.TargetCategories, b.TargetProducts, b.UsageLimit, b.StartsAt, b.EndsAt, b.Active)
}

// MustBuild is for tests whose subject is not campaign construction itself.
func (b *CampaignBuilder) MustBuild() *campaign.Campaign {
	c, err := b.BuildDomain()
	if err != nil {
		panic("campaign builder: " + err.Error())
	}
	// NewCampaign starts the counter at zero; tests that need a spent
	// campaign go through Reconstruct.
	if b.UsageCount != 0 {
		return b.Reconstruct()
	}
	return c
}

// Reconstruct bypasses construction rules, mirroring a row loaded from the
// database.
func (b *CampaignBuilder) Reconstruct() *campaign.Campaign {
	var code *campaign.Code
	if b.Code != nil {
		c := campaign.Code(*b.Code)
		code = &c
	}

	now := time.Now()
	return campaign.ReconstructCampaign(
		b.ID, b.Name, campaign.Kind(b.Kind), campaign.Scope(b.Scope), b.Value, code,
		b.MinAmount, b.MaxDiscount, b.TargetCategories, b.TargetProducts,
		b.UsageLimit, b.UsageCount, b.StartsAt, b.EndsAt, b.Active, now, now,
	)
}

func (b *CampaignBuilder) BuildCreateRequestDTO() reqdto.CreateCampaignRequest {
	return reqdto.CreateCampaignRequest{
		Name:             b.Name,
		Kind:             b.Kind,
		Scope:            b.Scope,
		Value:            b.Value,
		Code:             b.Code,
		MinAmount:        b.MinAmount,
		MaxDiscount:      b.MaxDiscount,
		TargetCategories: b.TargetCategories,
		TargetProducts:   b.TargetProducts,
		UsageLimit:       b.UsageLimit,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		Active:           b.Active,
	}
}

func (b *CampaignBuilder) BuildUpdateRequestDTO() reqdto.UpdateCampaignRequest {
	return reqdto.UpdateCampaignRequest{
		Name:             b.Name,
		Kind:             b.Kind,
		Scope:            b.Scope,
		Value:            b.Value,
		Code:             b.Code,
		MinAmount:        b.MinAmount,
		MaxDiscount:      b.MaxDiscount,
		TargetCategories: b.TargetCategories,
		TargetProducts:   b.TargetProducts,
		UsageLimit:       b.UsageLimit,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
	}
}

func (b *CampaignBuilder) BuildViewQuery() *queries.CampaignView {
	now := time.Now()
	return &queries.CampaignView{
		ID:               b.ID,
		Name:             b.Name,
		Kind:             b.Kind,
		Scope:            b.Scope,
		Value:            b.Value,
		Code:             b.Code,
		MinAmount:        b.MinAmount,
		MaxDiscount:      b.MaxDiscount,
		TargetCategories: b.TargetCategories,
		TargetProducts:   b.TargetProducts,
		UsageLimit:       b.UsageLimit,
		UsageCount:       b.UsageCount,
		StartsAt:         b.StartsAt,
		EndsAt:           b.EndsAt,
		Active:           b.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *CampaignBuilder) BuildBannerItem() *queries.CampaignBannerItem {
	return &queries.CampaignBannerItem{
		ID:    b.ID,
		Title: b.Name,
		Kind:  b.Kind,
		Value: b.Value,
	}
}
