package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/queries"
)

type OrderReadStore struct {
	db *pgxpool.Pool
}

func NewOrderReadStore(db *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (s *OrderReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, subtotal, discount, shipping_fee, total, coupon_code, campaign_id, created_at
		FROM orders
		WHERE id = $1`, id)

	var view queries.OrderView
	err := row.Scan(&view.ID, &view.UserID, &view.Subtotal, &view.Discount,
		&view.ShippingFee, &view.Total, &view.CouponCode, &view.CampaignID, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order row", err)
	}

	lines, err := s.listLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Lines = lines
	return &view, nil
}

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	query := `
		SELECT o.id, o.total, COUNT(i.order_id)::int, o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.Total, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

func (s *OrderReadStore) listLines(ctx context.Context, orderID uuid.UUID) ([]queries.OrderLineView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT product_id, category_id, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	var lines []queries.OrderLineView
	for rows.Next() {
		var line queries.OrderLineView
		if err := rows.Scan(&line.ProductID, &line.CategoryID, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order line rows", err)
	}
	return lines, nil
}
