//go:build unit

package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosme-store/internal/domain/cart"
	"cosme-store/tests/common/builder"
)

func TestNewSnapshot(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		snapshot, err := builder.NewCartBuilder().
			WithLine("100.00", 2).
			WithLine("50.50", 1).
			BuildSnapshot()
		require.NoError(t, err)
		require.Len(t, snapshot.Items(), 2)
		assert.True(t, snapshot.Subtotal().Equal(decimal.RequireFromString("250.50")))
	})

	t.Run("空のカートNG", func(t *testing.T) {
		_, err := cart.NewSnapshot(nil)
		require.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("数量ゼロNG", func(t *testing.T) {
		_, err := builder.NewCartBuilder().WithLine("100.00", 0).BuildSnapshot()
		require.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("負の数量NG", func(t *testing.T) {
		_, err := builder.NewCartBuilder().WithLine("100.00", -1).BuildSnapshot()
		require.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("負の単価NG", func(t *testing.T) {
		_, err := builder.NewCartBuilder().WithLine("-0.01", 1).BuildSnapshot()
		require.ErrorIs(t, err, cart.ErrNegativePrice)
	})

	t.Run("単価ゼロOK", func(t *testing.T) {
		snapshot, err := builder.NewCartBuilder().WithLine("0", 3).BuildSnapshot()
		require.NoError(t, err)
		assert.True(t, snapshot.Subtotal().IsZero())
	})

	t.Run("入力スライスの変更はスナップショットに波及しない", func(t *testing.T) {
		items := []cart.LineItem{
			{ProductID: uuid.New(), CategoryID: uuid.New(), UnitPrice: decimal.NewFromInt(100), Quantity: 1},
		}
		snapshot, err := cart.NewSnapshot(items)
		require.NoError(t, err)

		items[0].Quantity = 99
		assert.Equal(t, 1, snapshot.Items()[0].Quantity)
	})
}

func TestSnapshotScopedSubtotals(t *testing.T) {
	skincare := uuid.New()
	makeup := uuid.New()
	lipstick := uuid.New()

	snapshot := builder.NewCartBuilder().
		WithCategoryLine(skincare, "120.00", 1).
		WithCategoryLine(makeup, "80.00", 2).
		WithProductLine(lipstick, "45.00", 1).
		MustBuild()

	t.Run("カテゴリ別小計", func(t *testing.T) {
		got := snapshot.SubtotalForCategories([]uuid.UUID{skincare})
		assert.True(t, got.Equal(decimal.RequireFromString("120.00")))

		got = snapshot.SubtotalForCategories([]uuid.UUID{skincare, makeup})
		assert.True(t, got.Equal(decimal.RequireFromString("280.00")))
	})

	t.Run("商品別小計", func(t *testing.T) {
		got := snapshot.SubtotalForProducts([]uuid.UUID{lipstick})
		assert.True(t, got.Equal(decimal.RequireFromString("45.00")))
	})

	t.Run("該当なしはゼロ", func(t *testing.T) {
		assert.True(t, snapshot.SubtotalForCategories([]uuid.UUID{uuid.New()}).IsZero())
		assert.True(t, snapshot.SubtotalForProducts([]uuid.UUID{uuid.New()}).IsZero())
	})

	t.Run("マッチ判定", func(t *testing.T) {
		assert.True(t, snapshot.HasAnyCategory([]uuid.UUID{makeup}))
		assert.False(t, snapshot.HasAnyCategory([]uuid.UUID{uuid.New()}))
		assert.True(t, snapshot.HasAnyProduct([]uuid.UUID{lipstick}))
		assert.False(t, snapshot.HasAnyProduct([]uuid.UUID{uuid.New()}))
	})
}
