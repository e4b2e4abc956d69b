package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/seller_hub/internal/models"
)

// DashboardRepository computes dashboard aggregates.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats returns all dashboard counters from a single snapshot query.
func (r *DashboardRepository) Stats(ctx context.Context) (*models.DashboardStats, error) {
	const q = `
        SELECT
            (SELECT COUNT(1) FROM orders) AS total_orders,
            (SELECT COUNT(1) FROM orders WHERE status = 'PACKED') AS pending_dispatch,
            (SELECT COALESCE(SUM(total_amount), 0) FROM orders) AS total_sales,
            (SELECT COUNT(1) FROM products WHERE stock <= low_stock_threshold) AS low_stock_count,
            (SELECT COUNT(1) FROM returns) AS returns_count`

	var s models.DashboardStats
	if err := r.db.GetContext(ctx, &s, q); err != nil {
		return nil, err
	}
	return &s, nil
}
