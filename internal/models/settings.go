package models

import "time"

// SettingsKey is the primary key of the only settings row.
const SettingsKey = "default"

// Settings is the seller profile and marketplace credentials singleton.
// The client secret is held encrypted and never serialized.
type Settings struct {
	SellerName              string    `db:"seller_name" json:"sellerName"`
	SellerAddress           *string   `db:"seller_address" json:"sellerAddress"`
	GSTIN                   *string   `db:"gstin" json:"gstin"`
	LogoURL                 *string   `db:"logo_url" json:"logoUrl"`
	MarketplaceClientID     *string   `db:"marketplace_client_id" json:"marketplaceClientId"`
	MarketplaceClientSecret *string   `db:"marketplace_client_secret" json:"-"`
	IsSandbox               bool      `db:"is_sandbox" json:"isSandbox"`
	UpdatedAt               time.Time `db:"updated_at" json:"updatedAt"`

	HasClientSecret bool `db:"-" json:"hasClientSecret"`
}

// SettingsPatch carries the settings fields to write. Nil fields keep their stored value.
type SettingsPatch struct {
	SellerName              *string
	SellerAddress           *string
	GSTIN                   *string
	LogoURL                 *string
	MarketplaceClientID     *string
	MarketplaceClientSecret *string
	IsSandbox               *bool
}
