package writerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cosme-store/internal/domain/order"
	"cosme-store/internal/infra"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order header and its lines inside the caller's
// transaction so that order and campaign usage commit or roll back together.
func (r *OrderRepository) Create(ctx context.Context, tx pgx.Tx, o *order.Order) error {
	query := `
		INSERT INTO orders (
			id, user_id, subtotal, discount, shipping_fee, total, coupon_code, campaign_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		o.ID(),
		o.UserID(),
		o.Subtotal(),
		o.Discount(),
		o.ShippingFee(),
		o.Total(),
		o.CouponCode(),
		o.CampaignID(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("order references missing campaign", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert order", err)
	}

	lineQuery := `
		INSERT INTO order_items (
			order_id, position, product_id, category_id, unit_price, quantity
		) VALUES ($1, $2, $3, $4, $5, $6)`

	for i, line := range o.Lines() {
		_, err := tx.Exec(ctx, lineQuery,
			o.ID(), i, line.ProductID, line.CategoryID, line.UnitPrice, line.Quantity)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order line", err)
		}
	}
	return nil
}
