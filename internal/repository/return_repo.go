package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/seller_hub/internal/models"
)

// ReturnRepository handles data access for returns.
type ReturnRepository struct {
	db *sqlx.DB
}

// NewReturnRepository creates a new ReturnRepository.
func NewReturnRepository(db *sqlx.DB) *ReturnRepository {
	return &ReturnRepository{db: db}
}

// List returns all returns, newest first.
func (r *ReturnRepository) List(ctx context.Context) ([]models.Return, error) {
	const q = `
        SELECT id, order_id, return_id, reason, type, status, tracking_id, created_at, updated_at
        FROM returns ORDER BY created_at DESC, id DESC`

	returns := []models.Return{}
	if err := r.db.SelectContext(ctx, &returns, q); err != nil {
		return nil, err
	}
	return returns, nil
}

// Create inserts a new return and fills its id and timestamps.
func (r *ReturnRepository) Create(ctx context.Context, ret *models.Return) error {
	const q = `
        INSERT INTO returns (order_id, return_id, reason, type, status, tracking_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, q,
		ret.OrderID,
		ret.ReturnID,
		ret.Reason,
		ret.Type,
		ret.Status,
		ret.TrackingID,
	).Scan(&ret.ID, &ret.CreatedAt, &ret.UpdatedAt)
}
