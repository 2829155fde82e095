//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosme-store/internal/domain/campaign"
	"cosme-store/tests/common/builder"
)

type testCase struct {
	name   string
	mutate func(*builder.CampaignBuilder)
	errIs  error
}

func TestNewCampaign(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewCampaignBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.IsAutomatic())
		assert.False(t, actual.IsCouponGated())
		assert.True(t, actual.HasUsageHeadroom())
	})

	t.Run("種別ごとの値の検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "percentage 0〜100 OK",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("percentage").WithValue("100") },
			},
			{
				name:   "percentage 100超NG",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("percentage").WithValue("100.01") },
				errIs:  campaign.ErrValueOutOfRange,
			},
			{
				name:   "percentage 値なしNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("percentage").WithoutValue() },
				errIs:  campaign.ErrValueRequired,
			},
			{
				name:   "fixed 正の値OK",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("fixed").WithValue("500") },
			},
			{
				name:   "fixed ゼロNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("fixed").WithValue("0") },
				errIs:  campaign.ErrValueNotPositive,
			},
			{
				name:   "fixed 値なしNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("fixed").WithoutValue() },
				errIs:  campaign.ErrValueRequired,
			},
			{
				name:   "free_shipping 値なしOK",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("free_shipping").WithoutValue() },
			},
			{
				name:   "無効な種別NG",
				mutate: func(b *builder.CampaignBuilder) { b.WithKind("bogo") },
				errIs:  campaign.ErrInvalidKind,
			},
		})
	})

	t.Run("free_shipping の値は無視される", func(t *testing.T) {
		actual, err := builder.NewCampaignBuilder().
			WithKind("free_shipping").
			WithValue("10").
			BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Value())
		assert.True(t, actual.IsFreeShipping())
	})

	t.Run("スコープごとの検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "category 対象ありOK",
				mutate: func(b *builder.CampaignBuilder) {
					b.WithScope("category").WithTargetCategories(uuid.New())
				},
			},
			{
				name:   "category 対象なしNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithScope("category") },
				errIs:  campaign.ErrTargetsRequired,
			},
			{
				name: "product 対象ありOK",
				mutate: func(b *builder.CampaignBuilder) {
					b.WithScope("product").WithTargetProducts(uuid.New())
				},
			},
			{
				name:   "product 対象なしNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithScope("product") },
				errIs:  campaign.ErrTargetsRequired,
			},
			{
				name: "cart 最低金額ありOK",
				mutate: func(b *builder.CampaignBuilder) {
					b.WithScope("cart").WithMinAmount("3000")
				},
			},
			{
				name:   "cart 最低金額なしNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithScope("cart") },
				errIs:  campaign.ErrMinAmountRequired,
			},
			{
				name:   "無効なスコープNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithScope("brand") },
				errIs:  campaign.ErrInvalidScope,
			},
		})
	})

	t.Run("金額・期間・利用回数の検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "負の最低金額NG",
				mutate: func(b *builder.CampaignBuilder) { b.WithMinAmount("-1") },
				errIs:  campaign.ErrNegativeMinAmount,
			},
			{
				name:   "負の割引上限NG",
				mutate: func(b *builder.CampaignBuilder) { b.WithMaxDiscount("-1") },
				errIs:  campaign.ErrNegativeMaxDiscount,
			},
			{
				name: "終了が開始と同時刻NG",
				mutate: func(b *builder.CampaignBuilder) {
					at := time.Now()
					b.WithWindow(at, at)
				},
				errIs: campaign.ErrInvalidWindow,
			},
			{
				name: "終了が開始より前NG",
				mutate: func(b *builder.CampaignBuilder) {
					at := time.Now()
					b.WithWindow(at, at.Add(-time.Hour))
				},
				errIs: campaign.ErrInvalidWindow,
			},
			{
				name:   "利用上限ゼロNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithUsage(0, 0) },
				errIs:  campaign.ErrNegativeUsageLimit,
			},
			{
				name:   "利用上限ありOK",
				mutate: func(b *builder.CampaignBuilder) { b.WithUsage(100, 0) },
			},
		})
	})

	t.Run("クーポンコード検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なコードOK",
				mutate: func(b *builder.CampaignBuilder) { b.WithCode("AUTUMN10") },
			},
			{
				name:   "小文字は正規化されるOK",
				mutate: func(b *builder.CampaignBuilder) { b.WithCode("autumn10") },
			},
			{
				name:   "短すぎるコードNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithCode("AB") },
				errIs:  campaign.ErrInvalidCode,
			},
			{
				name:   "記号入りコードNG",
				mutate: func(b *builder.CampaignBuilder) { b.WithCode("SAVE-10") },
				errIs:  campaign.ErrInvalidCode,
			},
		})
	})
}

func TestUsageHeadroom(t *testing.T) {
	t.Run("上限なしは常に余裕あり", func(t *testing.T) {
		c := builder.NewCampaignBuilder().MustBuild()
		assert.True(t, c.HasUsageHeadroom())
	})

	t.Run("上限未満は余裕あり", func(t *testing.T) {
		c := builder.NewCampaignBuilder().WithUsage(10, 9).Reconstruct()
		assert.True(t, c.HasUsageHeadroom())
	})

	t.Run("上限到達で余裕なし", func(t *testing.T) {
		c := builder.NewCampaignBuilder().WithUsage(10, 10).Reconstruct()
		assert.False(t, c.HasUsageHeadroom())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCampaignBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
