package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/repository"
)

// ProductService provides product-related business logic.
type ProductService struct {
	products ProductStore
	stats    StatsInvalidator
}

// NewProductService constructs a ProductService.
func NewProductService(products ProductStore, stats StatsInvalidator) *ProductService {
	return &ProductService{products: products, stats: stats}
}

// ListProducts returns products matching a name substring and an exact category.
func (s *ProductService) ListProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	return s.products.List(ctx, search, category)
}

// GetProduct returns a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// CreateProduct persists a new product. A duplicate SKU yields ErrSKUExists.
func (s *ProductService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := s.products.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSKUExists
		}
		return nil, err
	}
	s.stats.Invalidate(ctx)
	return p, nil
}

// UpdateProduct applies a partial update to a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	p, err := s.products.Update(ctx, id, patch)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrProductNotFound
	case repository.IsUniqueViolation(err):
		return nil, ErrSKUExists
	case err != nil:
		return nil, err
	}
	s.stats.Invalidate(ctx)
	return p, nil
}
