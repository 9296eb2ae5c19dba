package pgstore

import (
	"context"
	"errors"

	"rentdesk/internal/domain/settings"

	"github.com/jackc/pgx/v5"
)

// Settings is a single row upserted in place. A missing row yields the
// zero value defaults rather than an error.
type settingsRepo struct {
	db pgx.Tx
}

func (r *settingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRow(ctx, `
		SELECT company_name, logo_url, address, phone, currency, tax_percentage
		FROM settings WHERE id = 1`,
	).Scan(&s.CompanyName, &s.LogoURL, &s.Address, &s.Phone, &s.Currency, &s.TaxPercentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Default(5), nil
		}
		return settings.Settings{}, wrapQueryErr("failed to load settings", err)
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s settings.Settings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO settings (id, company_name, logo_url, address, phone, currency, tax_percentage)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			logo_url = EXCLUDED.logo_url,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			currency = EXCLUDED.currency,
			tax_percentage = EXCLUDED.tax_percentage`,
		s.CompanyName, s.LogoURL, s.Address, s.Phone, s.Currency, s.TaxPercentage,
	)
	if err != nil {
		return wrapQueryErr("failed to save settings", err)
	}
	return nil
}
