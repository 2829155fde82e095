//go:build unit

package campaign_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"cosme-store/tests/common/builder"
)

func TestDiscount(t *testing.T) {
	t.Run("percentage は小計に対する割合", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("200.00", 1).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("percentage").WithValue("15").MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("30.00")), "got %s", got)
	})

	t.Run("percentage は割引上限でクランプ", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("1000.00", 1).MustBuild()
		c := builder.NewCampaignBuilder().
			WithKind("percentage").
			WithValue("20").
			WithMaxDiscount("50.00").
			MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("50.00")), "got %s", got)
	})

	t.Run("percentage は境界で半数繰り上げ丸め", func(t *testing.T) {
		// 33.33 * 15% = 4.9995 → 5.00
		snapshot := builder.NewCartBuilder().WithLine("33.33", 1).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("percentage").WithValue("15").MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("5.00")), "got %s", got)
	})

	t.Run("fixed は対象小計を超えない", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("30.00", 1).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("fixed").WithValue("50").MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("30.00")), "got %s", got)
	})

	t.Run("fixed 小計が十分なら額面どおり", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("100.00", 1).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("fixed").WithValue("50").MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("50.00")), "got %s", got)
	})

	t.Run("category スコープは対象行の小計のみ対象", func(t *testing.T) {
		skincare := uuid.New()
		snapshot := builder.NewCartBuilder().
			WithCategoryLine(skincare, "100.00", 1).
			WithLine("500.00", 1).
			MustBuild()
		c := builder.NewCampaignBuilder().
			WithKind("percentage").
			WithValue("10").
			WithScope("category").
			WithTargetCategories(skincare).
			MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("10.00")), "got %s", got)
	})

	t.Run("product スコープの fixed も対象小計でクランプ", func(t *testing.T) {
		serum := uuid.New()
		snapshot := builder.NewCartBuilder().
			WithProductLine(serum, "20.00", 1).
			WithLine("500.00", 1).
			MustBuild()
		c := builder.NewCampaignBuilder().
			WithKind("fixed").
			WithValue("50").
			WithScope("product").
			WithTargetProducts(serum).
			MustBuild()

		got := c.Discount(snapshot)
		assert.True(t, got.Equal(decimal.RequireFromString("20.00")), "got %s", got)
	})

	t.Run("free_shipping の割引額はゼロ", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("200.00", 1).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("free_shipping").WithoutValue().MustBuild()

		assert.True(t, c.Discount(snapshot).IsZero())
		assert.True(t, c.IsFreeShipping())
	})

	t.Run("同じ入力なら何度でも同じ結果", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithLine("123.45", 3).MustBuild()
		c := builder.NewCampaignBuilder().WithKind("percentage").WithValue("7.5").MustBuild()

		first := c.Discount(snapshot)
		second := c.Discount(snapshot)
		assert.True(t, first.Equal(second))
	})
}
