package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/repository"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// SettingsService manages the seller settings singleton.
type SettingsService struct {
	settings SettingsStore
	box      *utils.SecretBox
}

// NewSettingsService constructs a SettingsService. box seals the marketplace client secret.
func NewSettingsService(settings SettingsStore, box *utils.SecretBox) *SettingsService {
	return &SettingsService{settings: settings, box: box}
}

// GetSettings returns the settings or ErrSettingsNotFound before the first update.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	st, err := s.settings.Get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return redact(st), nil
}

// UpdateSettings creates the settings on first use and merges patch afterwards.
// The first write must carry a seller name.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	if patch.MarketplaceClientSecret != nil && *patch.MarketplaceClientSecret != "" {
		sealed, err := s.box.Seal(*patch.MarketplaceClientSecret)
		if err != nil {
			return nil, fmt.Errorf("seal client secret: %w", err)
		}
		patch.MarketplaceClientSecret = &sealed
	}

	st, err := s.settings.Upsert(ctx, patch)
	if repository.IsNotNullViolation(err) {
		return nil, ErrSellerNameRequired
	}
	if err != nil {
		return nil, err
	}
	return redact(st), nil
}

// MarketplaceCredentials returns the saved client credentials with the secret
// opened, or nil when no client id has been saved.
func (s *SettingsService) MarketplaceCredentials(ctx context.Context) (*marketplace.Credentials, error) {
	st, err := s.settings.Get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if st.MarketplaceClientID == nil || *st.MarketplaceClientID == "" {
		return nil, nil
	}

	creds := &marketplace.Credentials{ClientID: *st.MarketplaceClientID, Sandbox: st.IsSandbox}
	if st.MarketplaceClientSecret != nil && *st.MarketplaceClientSecret != "" {
		secret, err := s.box.Open(*st.MarketplaceClientSecret)
		if err != nil {
			return nil, fmt.Errorf("open client secret: %w", err)
		}
		creds.ClientSecret = secret
	}
	return creds, nil
}

func redact(st *models.Settings) *models.Settings {
	st.HasClientSecret = st.MarketplaceClientSecret != nil && *st.MarketplaceClientSecret != ""
	st.MarketplaceClientSecret = nil
	return st
}
