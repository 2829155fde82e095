//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosme-store/internal/domain/campaign"
	"cosme-store/tests/common/builder"
)

func strPtr(s string) *string { return &s }

func TestSelect(t *testing.T) {
	now := time.Now()
	snapshot := builder.NewCartBuilder().WithLine("200.00", 1).MustBuild()

	t.Run("自動キャンペーンは割引額が最大のものが勝つ", func(t *testing.T) {
		small := builder.NewCampaignBuilder().WithKind("percentage").WithValue("5").MustBuild()
		big := builder.NewCampaignBuilder().WithKind("percentage").WithValue("20").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{small, big}, snapshot, nil, now)
		require.NoError(t, err)
		assert.Equal(t, big.ID(), selection.CampaignID)
		assert.True(t, selection.Amount.Equal(decimal.RequireFromString("40.00")))
	})

	t.Run("同額の場合はIDが小さい方が勝つ", func(t *testing.T) {
		idA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
		idB := uuid.MustParse("22222222-2222-2222-2222-222222222222")
		a := builder.NewCampaignBuilder().WithID(idA).WithKind("percentage").WithValue("10").MustBuild()
		b := builder.NewCampaignBuilder().WithID(idB).WithKind("percentage").WithValue("10").MustBuild()

		// 順序に依存しないこと
		selection, err := campaign.Select([]*campaign.Campaign{b, a}, snapshot, nil, now)
		require.NoError(t, err)
		assert.Equal(t, idA, selection.CampaignID)

		selection, err = campaign.Select([]*campaign.Campaign{a, b}, snapshot, nil, now)
		require.NoError(t, err)
		assert.Equal(t, idA, selection.CampaignID)
	})

	t.Run("有効なクーポンは自動キャンペーンより割引が少なくても優先", func(t *testing.T) {
		auto := builder.NewCampaignBuilder().WithKind("percentage").WithValue("50").MustBuild()
		coupon := builder.NewCampaignBuilder().WithKind("fixed").WithValue("25").WithCode("SAVE25").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{auto, coupon}, snapshot, strPtr("SAVE25"), now)
		require.NoError(t, err)
		assert.Equal(t, coupon.ID(), selection.CampaignID)
		assert.True(t, selection.Amount.Equal(decimal.RequireFromString("25.00")))
		require.NotNil(t, selection.Code)
	})

	t.Run("コード入力は大文字小文字を区別しない", func(t *testing.T) {
		coupon := builder.NewCampaignBuilder().WithKind("fixed").WithValue("25").WithCode("SAVE25").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{coupon}, snapshot, strPtr("save25"), now)
		require.NoError(t, err)
		assert.Equal(t, coupon.ID(), selection.CampaignID)
	})

	t.Run("未知のコードはエラーで自動キャンペーンに落ちない", func(t *testing.T) {
		auto := builder.NewCampaignBuilder().WithKind("percentage").WithValue("50").MustBuild()

		_, err := campaign.Select([]*campaign.Campaign{auto}, snapshot, strPtr("UNKNOWN1"), now)
		require.ErrorIs(t, err, campaign.ErrCodeNotFound)
	})

	t.Run("不適合のクーポンは理由つきエラー", func(t *testing.T) {
		expired := builder.NewCampaignBuilder().
			WithKind("fixed").WithValue("25").WithCode("OLDCODE1").
			WithWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)).
			MustBuild()

		_, err := campaign.Select([]*campaign.Campaign{expired}, snapshot, strPtr("OLDCODE1"), now)
		require.ErrorIs(t, err, campaign.ErrExpired)

		short := builder.NewCampaignBuilder().
			WithKind("fixed").WithValue("25").WithCode("MINCODE1").
			WithScope("cart").WithMinAmount("500").
			MustBuild()

		_, err = campaign.Select([]*campaign.Campaign{short}, snapshot, strPtr("MINCODE1"), now)
		require.ErrorIs(t, err, campaign.ErrMinimumNotMet)
	})

	t.Run("クーポン専用キャンペーンは自動選考に参加しない", func(t *testing.T) {
		coupon := builder.NewCampaignBuilder().WithKind("percentage").WithValue("50").WithCode("HIDDEN99").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{coupon}, snapshot, nil, now)
		require.NoError(t, err)
		assert.False(t, selection.Applied())
		assert.True(t, selection.Amount.IsZero())
	})

	t.Run("適合キャンペーンなしは割引なし", func(t *testing.T) {
		selection, err := campaign.Select(nil, snapshot, nil, now)
		require.NoError(t, err)
		assert.False(t, selection.Applied())
		assert.True(t, selection.Amount.IsZero())
		assert.False(t, selection.FreeShipping)
	})

	t.Run("free_shipping は割引額ゼロで競合し単独なら選ばれる", func(t *testing.T) {
		freeShip := builder.NewCampaignBuilder().WithKind("free_shipping").WithoutValue().MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{freeShip}, snapshot, nil, now)
		require.NoError(t, err)
		assert.True(t, selection.Applied())
		assert.True(t, selection.Amount.IsZero())
		assert.True(t, selection.FreeShipping)
	})

	t.Run("正の割引がある場合 free_shipping は負ける", func(t *testing.T) {
		freeShip := builder.NewCampaignBuilder().WithKind("free_shipping").WithoutValue().MustBuild()
		discount := builder.NewCampaignBuilder().WithKind("percentage").WithValue("5").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{freeShip, discount}, snapshot, nil, now)
		require.NoError(t, err)
		assert.Equal(t, discount.ID(), selection.CampaignID)
		assert.False(t, selection.FreeShipping)
	})

	t.Run("free_shipping クーポンは送料免除フラグを立てる", func(t *testing.T) {
		coupon := builder.NewCampaignBuilder().WithKind("free_shipping").WithoutValue().WithCode("SHIPFREE").MustBuild()

		selection, err := campaign.Select([]*campaign.Campaign{coupon}, snapshot, strPtr("SHIPFREE"), now)
		require.NoError(t, err)
		assert.True(t, selection.FreeShipping)
		assert.True(t, selection.Amount.IsZero())
	})
}
