package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"
)

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrInvalidCart             = errs.New("invalid cart contents")
	ErrCouponNotFound          = errs.New("coupon code not recognized")
	ErrCouponNotYetActive      = errs.New("coupon is not yet active")
	ErrCouponExpired           = errs.New("coupon has expired")
	ErrCouponInactive          = errs.New("coupon is inactive")
	ErrCouponExhausted         = errs.New("coupon usage limit reached")
	ErrCouponMinimumNotMet     = errs.New("cart does not meet coupon minimum amount")
	ErrCouponNotApplicable     = errs.New("coupon does not apply to these items")
	ErrDiscountRaceLost        = errs.New("discount no longer available, retry checkout")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CartItemParams struct {
	ProductID  uuid.UUID
	CategoryID uuid.UUID
	UnitPrice  decimal.Decimal
	Quantity   int
}

type PlaceOrderParams struct {
	UserID     uuid.UUID
	Items      []CartItemParams
	CouponCode *string
}

type CheckoutCommands interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*queries.OrderView, error)
}

type checkoutCommandsImpl struct {
	orderRepo    OrderRepository
	campaignRepo CampaignRepository
	pricer       *shared.CartPricer
	orderQueries queries.OrderQueries
	db           *pgxpool.Pool
}

func NewCheckoutCommands(
	orderRepo OrderRepository,
	campaignRepo CampaignRepository,
	pricer *shared.CartPricer,
	orderQueries queries.OrderQueries,
	db *pgxpool.Pool,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
		pricer:       pricer,
		orderQueries: orderQueries,
		db:           db,
	}
}

// PlaceOrder prices the cart, persists the order snapshot, and records the
// applied campaign's usage in the same transaction. A campaign whose usage
// limit was exhausted between selection and commit aborts the checkout with
// ErrDiscountRaceLost; the buyer retries rather than being silently
// repriced.
func (c *checkoutCommandsImpl) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*queries.OrderView, error) {
	snapshot, err := cart.NewSnapshot(toLineItems(params.Items))
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			return nil, ErrEmptyCart
		}
		return nil, errs.Mark(err, ErrInvalidCart)
	}

	evaluation, err := c.pricer.Evaluate(ctx, snapshot, params.CouponCode)
	if err != nil {
		return nil, mapSelectionError(err)
	}

	orderEntity, err := c.buildOrder(params.UserID, snapshot, evaluation)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.persistOrder(ctx, orderEntity); err != nil {
		return nil, err
	}

	return c.orderQueries.GetByIDSystem(ctx, orderEntity.ID())
}

func (c *checkoutCommandsImpl) buildOrder(
	userID uuid.UUID,
	snapshot cart.Snapshot,
	evaluation *shared.PriceEvaluation,
) (*order.Order, error) {
	var (
		couponCode *string
		campaignID *uuid.UUID
	)
	if evaluation.Selection.Applied() {
		id := evaluation.Selection.CampaignID
		campaignID = &id
		if evaluation.Selection.Code != nil {
			code := evaluation.Selection.Code.String()
			couponCode = &code
		}
	}

	return order.NewOrder(userID, snapshot, evaluation.Totals, couponCode, campaignID)
}

func (c *checkoutCommandsImpl) persistOrder(ctx context.Context, orderEntity *order.Order) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.orderRepo.Create(ctx, tx, orderEntity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Usage is recorded only once the order insert is in the same
	// transaction; the conditional update is the race guard.
	if orderEntity.UsedCampaign() {
		if err := c.campaignRepo.IncrementUsage(ctx, tx, *orderEntity.CampaignID()); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return ErrDiscountRaceLost
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}
	return nil
}

func toLineItems(items []CartItemParams) []cart.LineItem {
	lineItems := make([]cart.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = cart.LineItem{
			ProductID:  item.ProductID,
			CategoryID: item.CategoryID,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}
	return lineItems
}

// mapSelectionError translates domain eligibility reasons into the command
// sentinels the handler layer maps to HTTP statuses.
func mapSelectionError(err error) error {
	switch {
	case errors.Is(err, campaign.ErrCodeNotFound):
		return ErrCouponNotFound
	case errors.Is(err, campaign.ErrNotYetActive):
		return ErrCouponNotYetActive
	case errors.Is(err, campaign.ErrExpired):
		return ErrCouponExpired
	case errors.Is(err, campaign.ErrInactive):
		return ErrCouponInactive
	case errors.Is(err, campaign.ErrExhausted):
		return ErrCouponExhausted
	case errors.Is(err, campaign.ErrMinimumNotMet):
		return ErrCouponMinimumNotMet
	case errors.Is(err, campaign.ErrNoMatch):
		return ErrCouponNotApplicable
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
