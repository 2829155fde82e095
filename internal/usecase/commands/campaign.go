package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/queries"
)

var (
	ErrCampaignNotFound  = errs.New("campaign not found")
	ErrCampaignCodeTaken = errs.New("campaign code already in use")
)

type CreateCampaignParams struct {
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
	StartsAt         time.Time
	EndsAt           time.Time
	Active           bool
}

type UpdateCampaignParams struct {
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
	StartsAt         time.Time
	EndsAt           time.Time
}

type CampaignCommands interface {
	Create(ctx context.Context, params CreateCampaignParams) (*queries.CampaignView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (*queries.CampaignView, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type campaignCommandsImpl struct {
	campaignRepo    CampaignRepository
	campaignQueries queries.CampaignQueries
}

func NewCampaignCommands(
	campaignRepo CampaignRepository,
	campaignQueries queries.CampaignQueries,
) CampaignCommands {
	return &campaignCommandsImpl{
		campaignRepo:    campaignRepo,
		campaignQueries: campaignQueries,
	}
}

func (c *campaignCommandsImpl) Create(ctx context.Context, params CreateCampaignParams) (*queries.CampaignView, error) {
	entity, err := buildCampaign(uuid.New(), params.Name, params.Kind, params.Scope, params.Value,
		params.Code, params.MinAmount, params.MaxDiscount, params.TargetCategories,
		params.TargetProducts, params.UsageLimit, params.StartsAt, params.EndsAt, params.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.campaignRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCampaignCodeTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.campaignQueries.GetByID(ctx, entity.ID())
}

// Update replaces the campaign definition wholesale; the usage counter is
// never writable through the admin surface.
func (c *campaignCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (*queries.CampaignView, error) {
	existing, err := c.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := buildCampaign(id, params.Name, params.Kind, params.Scope, params.Value,
		params.Code, params.MinAmount, params.MaxDiscount, params.TargetCategories,
		params.TargetProducts, params.UsageLimit, params.StartsAt, params.EndsAt, existing.IsActive())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.campaignRepo.Update(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCampaignNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrCampaignCodeTaken
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return c.campaignQueries.GetByID(ctx, id)
}

func (c *campaignCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := c.campaignRepo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCampaignNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func buildCampaign(
	id uuid.UUID,
	name, kind, scope string,
	value *decimal.Decimal,
	code *string,
	minAmount, maxDiscount *decimal.Decimal,
	targetCategories, targetProducts []uuid.UUID,
	usageLimit *int32,
	startsAt, endsAt time.Time,
	active bool,
) (*campaign.Campaign, error) {
	kindVO, err := campaign.NewKind(kind)
	if err != nil {
		return nil, err
	}
	scopeVO, err := campaign.NewScope(scope)
	if err != nil {
		return nil, err
	}

	var codeVO *campaign.Code
	if code != nil {
		parsed, err := campaign.NewCode(*code)
		if err != nil {
			return nil, err
		}
		codeVO = &parsed
	}

	return campaign.NewCampaign(id, name, kindVO, scopeVO, value, codeVO, minAmount,
		maxDiscount, targetCategories, targetProducts, usageLimit, startsAt, endsAt, active)
}
