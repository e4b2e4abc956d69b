package models

import "time"

// Product represents an inventory item.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID                   int       `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	SKU                  string    `db:"sku" json:"sku"`
	Description          *string   `db:"description" json:"description"`
	Price                Money     `db:"price" json:"price"`
	Stock                int       `db:"stock" json:"stock"`
	LowStockThreshold    int       `db:"low_stock_threshold" json:"lowStockThreshold"`
	ImageURL             *string   `db:"image_url" json:"imageUrl"`
	MarketplaceProductID *string   `db:"marketplace_product_id" json:"marketplaceProductId"`
	Category             *string   `db:"category" json:"category"`
	IsActive             bool      `db:"is_active" json:"isActive"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`
}

// IsLowStock reports whether stock is at or below the product's threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// ProductPatch carries the fields of a partial product update. Nil fields are left unchanged.
type ProductPatch struct {
	Name                 *string
	SKU                  *string
	Description          *string
	Price                *Money
	Stock                *int
	LowStockThreshold    *int
	ImageURL             *string
	MarketplaceProductID *string
	Category             *string
	IsActive             *bool
}
