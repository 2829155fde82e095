//go:build unit

package order_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/domain/order"
	"cosme-store/internal/domain/pricing"
	"cosme-store/tests/common/builder"
)

func TestNewOrder(t *testing.T) {
	userID := uuid.New()
	snapshot := builder.NewCartBuilder().
		WithLine("100.00", 2).
		WithLine("49.90", 1).
		MustBuild()
	totals := pricing.Aggregate(snapshot.Subtotal(), decimal.NewFromInt(20), decimal.RequireFromString("89.90"))

	t.Run("基本成功ケース", func(t *testing.T) {
		campaignID := uuid.New()
		code := "SAVE20XX"

		actual, err := order.NewOrder(userID, snapshot, totals, &code, &campaignID)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Len(t, actual.Lines(), 2)
		assert.True(t, actual.Subtotal().Equal(decimal.RequireFromString("249.90")))
		assert.True(t, actual.Discount().Equal(decimal.RequireFromString("20.00")))
		assert.True(t, actual.ShippingFee().Equal(decimal.RequireFromString("89.90")))
		assert.True(t, actual.Total().Equal(decimal.RequireFromString("319.80")))
		assert.True(t, actual.UsedCampaign())
		require.NotNil(t, actual.CouponCode())
		assert.Equal(t, code, *actual.CouponCode())
	})

	t.Run("キャンペーンなしの注文OK", func(t *testing.T) {
		actual, err := order.NewOrder(userID, snapshot, totals, nil, nil)
		require.NoError(t, err)
		assert.False(t, actual.UsedCampaign())
		assert.Nil(t, actual.CouponCode())
		assert.Nil(t, actual.CampaignID())
	})

	t.Run("空のスナップショットNG", func(t *testing.T) {
		_, err := order.NewOrder(userID, cart.Snapshot{}, totals, nil, nil)
		require.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("負の合計NG", func(t *testing.T) {
		bad := pricing.Totals{Total: decimal.NewFromInt(-1)}
		_, err := order.NewOrder(userID, snapshot, bad, nil, nil)
		require.ErrorIs(t, err, order.ErrNegativeTotal)
	})

	t.Run("明細は注文時点の価格で凍結される", func(t *testing.T) {
		actual, err := order.NewOrder(userID, snapshot, totals, nil, nil)
		require.NoError(t, err)

		lines := actual.Lines()
		require.Len(t, lines, 2)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("100.00")))
		assert.Equal(t, 2, lines[0].Quantity)
	})
}
