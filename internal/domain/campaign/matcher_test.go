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

func TestLivenessAt(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	window := func(b *builder.CampaignBuilder) {
		b.WithWindow(base, base.Add(48*time.Hour))
	}

	cases := []struct {
		name  string
		build func() *campaign.Campaign
		at    time.Time
		errIs error
	}{
		{
			name:  "期間内かつアクティブ",
			build: func() *campaign.Campaign { return builder.NewCampaignBuilder().With(window).MustBuild() },
			at:    base.Add(time.Hour),
		},
		{
			name:  "開始時刻ちょうどは有効",
			build: func() *campaign.Campaign { return builder.NewCampaignBuilder().With(window).MustBuild() },
			at:    base,
		},
		{
			name:  "開始前",
			build: func() *campaign.Campaign { return builder.NewCampaignBuilder().With(window).MustBuild() },
			at:    base.Add(-time.Second),
			errIs: campaign.ErrNotYetActive,
		},
		{
			name:  "終了時刻ちょうどは無効",
			build: func() *campaign.Campaign { return builder.NewCampaignBuilder().With(window).MustBuild() },
			at:    base.Add(48 * time.Hour),
			errIs: campaign.ErrExpired,
		},
		{
			name: "非アクティブ",
			build: func() *campaign.Campaign {
				return builder.NewCampaignBuilder().With(window).AsInactive().MustBuild()
			},
			at:    base.Add(time.Hour),
			errIs: campaign.ErrInactive,
		},
		{
			name: "利用上限到達",
			build: func() *campaign.Campaign {
				return builder.NewCampaignBuilder().With(window).WithUsage(5, 5).Reconstruct()
			},
			at:    base.Add(time.Hour),
			errIs: campaign.ErrExhausted,
		},
		{
			name: "利用上限に余裕あり",
			build: func() *campaign.Campaign {
				return builder.NewCampaignBuilder().With(window).WithUsage(5, 4).Reconstruct()
			},
			at: base.Add(time.Hour),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.build().LivenessAt(c.at)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestEligibilityFor(t *testing.T) {
	now := time.Now()
	skincare := uuid.New()
	serum := uuid.New()

	snapshot := builder.NewCartBuilder().
		WithCategoryLine(skincare, "100.00", 2).
		WithProductLine(serum, "49.99", 1).
		MustBuild() // 小計 249.99

	t.Run("スコープ all は常にマッチ", func(t *testing.T) {
		c := builder.NewCampaignBuilder().MustBuild()
		require.NoError(t, c.EligibilityFor(snapshot, now))
	})

	t.Run("category 対象が含まれればマッチ", func(t *testing.T) {
		c := builder.NewCampaignBuilder().
			WithScope("category").
			WithTargetCategories(skincare, uuid.New()).
			MustBuild()
		require.NoError(t, c.EligibilityFor(snapshot, now))
	})

	t.Run("category 対象が含まれなければ不適合", func(t *testing.T) {
		c := builder.NewCampaignBuilder().
			WithScope("category").
			WithTargetCategories(uuid.New()).
			MustBuild()
		require.ErrorIs(t, c.EligibilityFor(snapshot, now), campaign.ErrNoMatch)
	})

	t.Run("product 対象が含まれればマッチ", func(t *testing.T) {
		c := builder.NewCampaignBuilder().
			WithScope("product").
			WithTargetProducts(serum).
			MustBuild()
		require.NoError(t, c.EligibilityFor(snapshot, now))
	})

	t.Run("product 対象が含まれなければ不適合", func(t *testing.T) {
		c := builder.NewCampaignBuilder().
			WithScope("product").
			WithTargetProducts(uuid.New()).
			MustBuild()
		require.ErrorIs(t, c.EligibilityFor(snapshot, now), campaign.ErrNoMatch)
	})

	t.Run("最低金額は小計全体で判定", func(t *testing.T) {
		met := builder.NewCampaignBuilder().
			WithScope("cart").
			WithMinAmount("249.99").
			MustBuild()
		require.NoError(t, met.EligibilityFor(snapshot, now))

		notMet := builder.NewCampaignBuilder().
			WithScope("cart").
			WithMinAmount("250.00").
			MustBuild()
		require.ErrorIs(t, notMet.EligibilityFor(snapshot, now), campaign.ErrMinimumNotMet)
	})

	t.Run("失効理由はスコープ不適合より優先", func(t *testing.T) {
		c := builder.NewCampaignBuilder().
			WithScope("category").
			WithTargetCategories(uuid.New()).
			WithWindow(now.Add(-48*time.Hour), now.Add(-24*time.Hour)).
			MustBuild()
		require.ErrorIs(t, c.EligibilityFor(snapshot, now), campaign.ErrExpired)
	})

	t.Run("繰り返し評価しても結果は変わらない", func(t *testing.T) {
		c := builder.NewCampaignBuilder().MustBuild()
		first := c.EligibleFor(snapshot, now)
		second := c.EligibleFor(snapshot, now)
		assert.Equal(t, first, second)
	})
}
