package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/seller_hub/internal/models"
)

const settingsColumns = `seller_name, seller_address, gstin, logo_url, marketplace_client_id,
        marketplace_client_secret, is_sandbox, updated_at`

// SettingsRepository handles data access for the settings singleton.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row or sql.ErrNoRows when it was never written.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	const q = `SELECT ` + settingsColumns + ` FROM settings WHERE singleton_key = $1`

	var s models.Settings
	if err := r.db.GetContext(ctx, &s, q, models.SettingsKey); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates the settings row or merges patch into it in a single statement.
// The proposed row falls back to the stored seller name so partial patches pass
// the NOT NULL check; creating the row without a seller name still violates it.
func (r *SettingsRepository) Upsert(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	const q = `
        INSERT INTO settings (singleton_key, seller_name, seller_address, gstin, logo_url,
            marketplace_client_id, marketplace_client_secret, is_sandbox, updated_at)
        VALUES ($1, COALESCE($2, (SELECT seller_name FROM settings WHERE singleton_key = $1)),
            $3, $4, $5, $6, $7, COALESCE($8::boolean, true), NOW())
        ON CONFLICT (singleton_key) DO UPDATE SET
            seller_name = COALESCE($2, settings.seller_name),
            seller_address = COALESCE($3, settings.seller_address),
            gstin = COALESCE($4, settings.gstin),
            logo_url = COALESCE($5, settings.logo_url),
            marketplace_client_id = COALESCE($6, settings.marketplace_client_id),
            marketplace_client_secret = COALESCE($7, settings.marketplace_client_secret),
            is_sandbox = COALESCE($8::boolean, settings.is_sandbox),
            updated_at = NOW()
        RETURNING ` + settingsColumns

	var s models.Settings
	err := r.db.GetContext(ctx, &s, q,
		models.SettingsKey,
		patch.SellerName,
		patch.SellerAddress,
		patch.GSTIN,
		patch.LogoURL,
		patch.MarketplaceClientID,
		patch.MarketplaceClientSecret,
		patch.IsSandbox,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
