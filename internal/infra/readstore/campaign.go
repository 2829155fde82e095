package readstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/pgconv"
	"cosme-store/internal/usecase/queries"
)

type CampaignReadStore struct {
	db *pgxpool.Pool
}

func NewCampaignReadStore(db *pgxpool.Pool) *CampaignReadStore {
	return &CampaignReadStore{db: db}
}

const campaignViewColumns = `id, name, kind, scope, value, code, min_amount, max_discount,
	target_categories, target_products, usage_limit, usage_count, starts_at, ends_at,
	active, created_at, updated_at`

func (s *CampaignReadStore) ListAll(ctx context.Context) ([]*queries.CampaignView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+campaignViewColumns+` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	defer rows.Close()

	var views []*queries.CampaignView
	for rows.Next() {
		view, err := scanCampaignView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaign rows", err)
	}
	return views, nil
}

func (s *CampaignReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.CampaignView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+campaignViewColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaignView(row)
}

// ListLiveAutomatic returns codeless live campaigns in banner shape. Coupon
// campaigns are excluded: advertising a code defeats its purpose.
func (s *CampaignReadStore) ListLiveAutomatic(ctx context.Context, now time.Time) ([]*queries.CampaignBannerItem, error) {
	query := `
		SELECT id, name, kind, value
		FROM campaigns
		WHERE active
		  AND code IS NULL
		  AND starts_at <= $1
		  AND ends_at > $1
		  AND (usage_limit IS NULL OR usage_count < usage_limit)
		ORDER BY starts_at DESC`

	rows, err := s.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live campaigns", err)
	}
	defer rows.Close()

	var items []*queries.CampaignBannerItem
	for rows.Next() {
		var item queries.CampaignBannerItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Kind, &item.Value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign banner row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaign rows", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaignView(row rowScanner) (*queries.CampaignView, error) {
	var (
		view           queries.CampaignView
		categoriesJSON []byte
		productsJSON   []byte
	)

	err := row.Scan(&view.ID, &view.Name, &view.Kind, &view.Scope, &view.Value, &view.Code,
		&view.MinAmount, &view.MaxDiscount, &categoriesJSON, &productsJSON,
		&view.UsageLimit, &view.UsageCount, &view.StartsAt, &view.EndsAt,
		&view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan campaign row", err)
	}

	if len(categoriesJSON) > 0 {
		if err := json.Unmarshal(categoriesJSON, &view.TargetCategories); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal target categories", err)
		}
	}
	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &view.TargetProducts); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal target products", err)
		}
	}
	return &view, nil
}
