package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/domain/order"
)

// Write-side repository ports. Transactional methods take the pgx.Tx opened
// by the command so the order insert and the usage increment commit or roll
// back together.

type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, o *order.Order) error
}

type CampaignRepository interface {
	Create(ctx context.Context, c *campaign.Campaign) error
	Update(ctx context.Context, c *campaign.Campaign) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error)
	// IncrementUsage performs the atomic conditional redemption count
	// update. It must fail with KindConditionFailed when the usage limit
	// was exhausted by a concurrent checkout.
	IncrementUsage(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}
