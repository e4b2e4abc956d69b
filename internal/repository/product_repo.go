package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/seller_hub/internal/models"
)

const productColumns = `id, name, sku, description, price, stock, low_stock_threshold, image_url,
        marketplace_product_id, category, is_active, created_at, updated_at`

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products filtered by a case-insensitive name substring and an exact category.
// When search or category is an empty string, the filter is ignored respectively.
func (r *ProductRepository) List(ctx context.Context, search, category string) ([]models.Product, error) {
	const q = `
        SELECT ` + productColumns + ` FROM products
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
        AND ($2 = '' OR category = $2)
        ORDER BY id`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q, escapeLike(search), category); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id or sql.ErrNoRows.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product and fills its id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	const q = `
        INSERT INTO products (name, sku, description, price, stock, low_stock_threshold,
            image_url, marketplace_product_id, category, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, q,
		p.Name,
		p.SKU,
		p.Description,
		p.Price,
		p.Stock,
		p.LowStockThreshold,
		p.ImageURL,
		p.MarketplaceProductID,
		p.Category,
		p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update applies the non-nil fields of patch and returns the updated row.
// A missing row yields sql.ErrNoRows.
func (r *ProductRepository) Update(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	var b setBuilder
	if patch.Name != nil {
		b.add("name", *patch.Name)
	}
	if patch.SKU != nil {
		b.add("sku", *patch.SKU)
	}
	if patch.Description != nil {
		b.add("description", *patch.Description)
	}
	if patch.Price != nil {
		b.add("price", *patch.Price)
	}
	if patch.Stock != nil {
		b.add("stock", *patch.Stock)
	}
	if patch.LowStockThreshold != nil {
		b.add("low_stock_threshold", *patch.LowStockThreshold)
	}
	if patch.ImageURL != nil {
		b.add("image_url", *patch.ImageURL)
	}
	if patch.MarketplaceProductID != nil {
		b.add("marketplace_product_id", *patch.MarketplaceProductID)
	}
	if patch.Category != nil {
		b.add("category", *patch.Category)
	}
	if patch.IsActive != nil {
		b.add("is_active", *patch.IsActive)
	}

	q, args := b.build("products", id, productColumns)

	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, args...); err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of products.
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(1) FROM products`); err != nil {
		return 0, err
	}
	return n, nil
}

// ListLowStock returns active products whose stock is at or below their threshold.
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT ` + productColumns + ` FROM products
        WHERE stock <= low_stock_threshold AND is_active = true
        ORDER BY stock, id`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// ListInactiveInStock returns inactive products that still hold stock.
func (r *ProductRepository) ListInactiveInStock(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT ` + productColumns + ` FROM products
        WHERE is_active = false AND stock > 0
        ORDER BY id`

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// lockBySKU returns the id of the product with sku, locking its row for the
// rest of tx. ok is false when no product matches.
func lockBySKU(ctx context.Context, tx *sqlx.Tx, sku string) (id int, ok bool, err error) {
	err = tx.GetContext(ctx, &id, `SELECT id FROM products WHERE sku = $1 FOR UPDATE`, sku)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// decrementStock subtracts qty from the product's stock inside tx.
func decrementStock(ctx context.Context, tx *sqlx.Tx, productID, qty int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2`, qty, productID)
	return err
}
