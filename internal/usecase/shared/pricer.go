package shared

import (
	"context"
	"time"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/pricing"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/config"
)

// CampaignFinder serves the pricing pass with candidate campaigns.
// FindByCode must return campaigns regardless of liveness so an entered
// coupon can fail with its precise reason instead of "not recognized".
type CampaignFinder interface {
	ListLive(ctx context.Context, now time.Time) ([]*campaign.Campaign, error)
	FindByCode(ctx context.Context, code string) (*campaign.Campaign, error)
}

// ShippingRatesStore reads the store-wide shipping settings row.
type ShippingRatesStore interface {
	Get(ctx context.Context) (pricing.ShippingRates, error)
}

// PriceEvaluation is one full pricing pass over a cart: the selected
// campaign (if any) and the aggregated totals.
type PriceEvaluation struct {
	Selection campaign.Selection
	Totals    pricing.Totals
}

// CartPricer runs the read-only pricing pass shared by cart quotes and
// checkout: campaign selection, shipping fee, and total aggregation.
type CartPricer struct {
	campaigns CampaignFinder
	rates     ShippingRatesStore
	fallback  config.ShippingConfig
	clock     clock.Clock
}

func NewCartPricer(
	campaigns CampaignFinder,
	rates ShippingRatesStore,
	cfg config.Config,
	clk clock.Clock,
) *CartPricer {
	return &CartPricer{
		campaigns: campaigns,
		rates:     rates,
		fallback:  cfg.Shipping,
		clock:     clk,
	}
}

// Evaluate prices the cart. A nil couponCode means only automatic campaigns
// compete; a non-nil one must resolve to a valid coupon or the evaluation
// fails with the domain reason.
func (p *CartPricer) Evaluate(ctx context.Context, snapshot cart.Snapshot, couponCode *string) (*PriceEvaluation, error) {
	now := p.clock.Now()

	candidates, err := p.campaigns.ListLive(ctx, now)
	if err != nil {
		return nil, err
	}

	if couponCode != nil {
		coupon, err := p.campaigns.FindByCode(ctx, *couponCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, campaign.ErrCodeNotFound
			}
			return nil, err
		}
		candidates = appendUnique(candidates, coupon)
	}

	selection, err := campaign.Select(candidates, snapshot, couponCode, now)
	if err != nil {
		return nil, err
	}

	subtotal := snapshot.Subtotal()
	fee := pricing.ShippingFee(subtotal, p.shippingRates(ctx), selection.FreeShipping)

	return &PriceEvaluation{
		Selection: selection,
		Totals:    pricing.Aggregate(subtotal, selection.Amount, fee),
	}, nil
}

// shippingRates reads the settings row, falling back to the configured
// defaults when absent or unreadable. Missing configuration must never
// block a quote or a checkout.
func (p *CartPricer) shippingRates(ctx context.Context) pricing.ShippingRates {
	rates, err := p.rates.Get(ctx)
	if err != nil {
		return pricing.ShippingRates{
			FlatFee:               p.fallback.FlatFeeAmount(),
			FreeShippingThreshold: p.fallback.ThresholdAmount(),
		}
	}
	return rates
}

func appendUnique(campaigns []*campaign.Campaign, c *campaign.Campaign) []*campaign.Campaign {
	for _, existing := range campaigns {
		if existing.ID() == c.ID() {
			return campaigns
		}
	}
	return append(campaigns, c)
}
