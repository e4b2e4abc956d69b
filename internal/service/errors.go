package service

import "errors"

// Domain errors returned by services and mapped to HTTP statuses by handlers.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrSettingsNotFound   = errors.New("settings not found")
	ErrSKUExists          = errors.New("sku already exists")
	ErrOrderExists        = errors.New("order id already exists")
	ErrSellerNameRequired = errors.New("sellerName is required")
)
