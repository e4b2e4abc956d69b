package service

import (
	"context"

	"github.com/GTDGit/seller_hub/internal/models"
)

// ReturnService provides return-related business logic.
type ReturnService struct {
	returns ReturnStore
	stats   StatsInvalidator
}

// NewReturnService constructs a ReturnService.
func NewReturnService(returns ReturnStore, stats StatsInvalidator) *ReturnService {
	return &ReturnService{returns: returns, stats: stats}
}

// ListReturns returns all returns, newest first.
func (s *ReturnService) ListReturns(ctx context.Context) ([]models.Return, error) {
	return s.returns.List(ctx)
}

// CreateReturn records a return. Status defaults to REQUESTED.
func (s *ReturnService) CreateReturn(ctx context.Context, r *models.Return) (*models.Return, error) {
	if r.Status == nil {
		status := models.ReturnStatusRequested
		r.Status = &status
	}
	if err := s.returns.Create(ctx, r); err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx)
	return r, nil
}
