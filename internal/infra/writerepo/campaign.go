package writerepo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"cosme-store/internal/domain/campaign"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/pgconv"
)

const campaignColumns = `id, name, kind, scope, value, code, min_amount, max_discount,
	target_categories, target_products, usage_limit, usage_count, starts_at, ends_at,
	active, created_at, updated_at`

type CampaignRepository struct {
	db *pgxpool.Pool
}

func NewCampaignRepository(db *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	categoriesJSON, productsJSON, err := marshalTargets(c)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal campaign targets", err)
	}

	query := `
		INSERT INTO campaigns (
			id, name, kind, scope, value, code, min_amount, max_discount,
			target_categories, target_products, usage_limit, starts_at, ends_at, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		c.Kind().String(),
		c.Scope().String(),
		c.Value(),
		codeString(c),
		c.MinAmount(),
		c.MaxDiscount(),
		categoriesJSON,
		productsJSON,
		c.UsageLimit(),
		c.StartsAt(),
		c.EndsAt(),
		c.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("campaign code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert campaign", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	categoriesJSON, productsJSON, err := marshalTargets(c)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal campaign targets", err)
	}

	// usage_count is not touched here; only IncrementUsage writes it.
	query := `
		UPDATE campaigns
		SET name = $2, kind = $3, scope = $4, value = $5, code = $6, min_amount = $7,
		    max_discount = $8, target_categories = $9, target_products = $10,
		    usage_limit = $11, starts_at = $12, ends_at = $13, updated_at = NOW()
		WHERE id = $1`

	ct, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		c.Kind().String(),
		c.Scope().String(),
		c.Value(),
		codeString(c),
		c.MinAmount(),
		c.MaxDiscount(),
		categoriesJSON,
		productsJSON,
		c.UsageLimit(),
		c.StartsAt(),
		c.EndsAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("campaign code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update campaign", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CampaignRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE campaigns SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapRepoErr("failed to set campaign active flag", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// FindByCode matches case-insensitively and returns the campaign regardless
// of liveness; eligibility decides what the buyer is told.
func (r *CampaignRepository) FindByCode(ctx context.Context, code string) (*campaign.Campaign, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	row := r.db.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE code = $1`, normalized)
	return scanCampaign(row)
}

// ListLive returns campaigns usable at now: switched on, inside their
// window, with redemption headroom.
func (r *CampaignRepository) ListLive(ctx context.Context, now time.Time) ([]*campaign.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE active
		  AND starts_at <= $1
		  AND ends_at > $1
		  AND (usage_limit IS NULL OR usage_count < usage_limit)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live campaigns", err)
	}
	defer rows.Close()

	var campaigns []*campaign.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate campaign rows", err)
	}
	return campaigns, nil
}

// IncrementUsage is the race guard for limited campaigns: the increment is
// conditioned on headroom at write time, so concurrent checkouts can never
// push usage_count past usage_limit. Zero rows affected means the condition
// no longer holds.
func (r *CampaignRepository) IncrementUsage(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		UPDATE campaigns
		SET usage_count = usage_count + 1, updated_at = NOW()
		WHERE id = $1
		  AND (usage_limit IS NULL OR usage_count < usage_limit)`

	ct, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment campaign usage", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign usage limit exhausted", nil, infra.KindConditionFailed)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*campaign.Campaign, error) {
	var (
		id               uuid.UUID
		name             string
		kind             string
		scope            string
		value            *decimal.Decimal
		code             *string
		minAmount        *decimal.Decimal
		maxDiscount      *decimal.Decimal
		categoriesJSON   []byte
		productsJSON     []byte
		usageLimit       *int32
		usageCount       int32
		startsAt, endsAt time.Time
		active           bool
		createdAt        time.Time
		updatedAt        time.Time
	)

	err := row.Scan(&id, &name, &kind, &scope, &value, &code, &minAmount, &maxDiscount,
		&categoriesJSON, &productsJSON, &usageLimit, &usageCount, &startsAt, &endsAt,
		&active, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan campaign row", err)
	}

	targetCategories, err := unmarshalIDs(categoriesJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal target categories", err)
	}
	targetProducts, err := unmarshalIDs(productsJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal target products", err)
	}

	var codeVO *campaign.Code
	if code != nil {
		c := campaign.Code(*code)
		codeVO = &c
	}

	return campaign.ReconstructCampaign(
		id, name, campaign.Kind(kind), campaign.Scope(scope), value, codeVO,
		minAmount, maxDiscount, targetCategories, targetProducts,
		usageLimit, usageCount, startsAt, endsAt, active, createdAt, updatedAt,
	), nil
}

func marshalTargets(c *campaign.Campaign) ([]byte, []byte, error) {
	categoriesJSON, err := json.Marshal(idsOrEmpty(c.TargetCategories()))
	if err != nil {
		return nil, nil, err
	}
	productsJSON, err := json.Marshal(idsOrEmpty(c.TargetProducts()))
	if err != nil {
		return nil, nil, err
	}
	return categoriesJSON, productsJSON, nil
}

func idsOrEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func unmarshalIDs(data []byte) ([]uuid.UUID, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

func codeString(c *campaign.Campaign) *string {
	if c.Code() == nil {
		return nil
	}
	s := c.Code().String()
	return &s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
