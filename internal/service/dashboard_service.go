package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/models"
)

// DashboardService serves dashboard aggregates, optionally through a cache.
type DashboardService struct {
	stats StatsStore
	cache StatsCache
}

// NewDashboardService constructs a DashboardService. cache may be nil.
func NewDashboardService(stats StatsStore, cache StatsCache) *DashboardService {
	return &DashboardService{stats: stats, cache: cache}
}

// GetDashboardStats returns the aggregate snapshot. Storage failures are
// returned; cache failures only fall through to storage.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard stats cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			log.Warn().Err(err).Msg("dashboard stats cache write failed")
		}
	}
	return stats, nil
}

// Invalidate drops cached aggregates after a mutation.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("dashboard stats cache invalidation failed")
	}
}
