package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cosme-store/internal/domain/pricing"
	"cosme-store/internal/infra"
	"cosme-store/internal/pkg/pgconv"
)

// SettingsReadStore reads the singleton store_settings row. Callers fall
// back to configured defaults when the row is absent.
type SettingsReadStore struct {
	db *pgxpool.Pool
}

func NewSettingsReadStore(db *pgxpool.Pool) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (s *SettingsReadStore) Get(ctx context.Context) (pricing.ShippingRates, error) {
	row := s.db.QueryRow(ctx, `
		SELECT shipping_fee, free_shipping_threshold
		FROM store_settings
		WHERE singleton`)

	var rates pricing.ShippingRates
	if err := row.Scan(&rates.FlatFee, &rates.FreeShippingThreshold); err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.ShippingRates{}, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return pricing.ShippingRates{}, infra.WrapRepoErr("failed to scan store settings", err)
	}
	return rates, nil
}
