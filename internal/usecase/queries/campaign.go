package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
)

type CampaignReadStore interface {
	ListAll(ctx context.Context) ([]*CampaignView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	ListLiveAutomatic(ctx context.Context, now time.Time) ([]*CampaignBannerItem, error)
}

type CampaignQueries interface {
	List(ctx context.Context) ([]*CampaignView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error)
	// ListActive returns the live automatic campaigns in the minimal shape
	// consumed by storefront banners.
	ListActive(ctx context.Context) ([]*CampaignBannerItem, error)
}

type campaignQueriesImpl struct {
	store CampaignReadStore
	clock clock.Clock
}

func NewCampaignQueries(store CampaignReadStore, clk clock.Clock) CampaignQueries {
	return &campaignQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *campaignQueriesImpl) List(ctx context.Context) ([]*CampaignView, error) {
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list campaigns")
	}
	return views, nil
}

func (q *campaignQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CampaignView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCampaignNotFound
		}
		return nil, errs.Wrap(err, "failed to get campaign")
	}
	return view, nil
}

func (q *campaignQueriesImpl) ListActive(ctx context.Context) ([]*CampaignBannerItem, error) {
	items, err := q.store.ListLiveAutomatic(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active campaigns")
	}
	return items, nil
}
