//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"cosme-store/tests/common/builder"
)

// DBLike is the part of pgxpool.Pool the fixtures need; a pgx.Tx
// satisfies it too.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertCampaign writes the builder's campaign straight into the campaigns
// table, usage counter included.
func InsertCampaign(t *testing.T, db DBLike, b *builder.CampaignBuilder) uuid.UUID {
	t.Helper()

	categoriesJSON, err := json.Marshal(orEmpty(b.TargetCategories))
	require.NoError(t, err)
	productsJSON, err := json.Marshal(orEmpty(b.TargetProducts))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx, `
		INSERT INTO campaigns (
			id, name, kind, scope, value, code, min_amount, max_discount,
			target_categories, target_products, usage_limit, usage_count,
			starts_at, ends_at, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID, b.Name, b.Kind, b.Scope, b.Value, b.Code, b.MinAmount, b.MaxDiscount,
		categoriesJSON, productsJSON, b.UsageLimit, b.UsageCount,
		b.StartsAt, b.EndsAt, b.Active)
	require.NoError(t, err)

	return b.ID
}

// SeedStoreSettings writes the singleton shipping settings row.
func SeedStoreSettings(t *testing.T, db DBLike, flatFee, threshold string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO store_settings (singleton, shipping_fee, free_shipping_threshold)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton)
		DO UPDATE SET shipping_fee = $1, free_shipping_threshold = $2, updated_at = NOW()`,
		flatFee, threshold)
	require.NoError(t, err)
}

func CountOrders(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CampaignUsageCount(t *testing.T, db DBLike, campaignID uuid.UUID) int32 {
	t.Helper()

	var count int32
	err := db.QueryRow(context.Background(),
		"SELECT usage_count FROM campaigns WHERE id = $1", campaignID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(),
		"TRUNCATE order_items, orders, campaigns, store_settings")
	return err
}

func orEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
