package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/GTDGit/seller_hub/internal/models"
)

const statsKey = "dashboard:stats"

// Store is the key/value surface StatsCache needs. RedisClient implements it.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
}

// StatsCache caches the dashboard aggregate snapshot.
type StatsCache struct {
	store Store
	ttl   time.Duration
}

// NewStatsCache creates a new StatsCache.
func NewStatsCache(store Store, ttl time.Duration) *StatsCache {
	return &StatsCache{store: store, ttl: ttl}
}

// Get returns cached stats. ok is false on a miss.
func (c *StatsCache) Get(ctx context.Context) (stats *models.DashboardStats, ok bool, err error) {
	b, err := c.store.Get(ctx, statsKey)
	if errors.Is(err, ErrMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var s models.DashboardStats
	if err := json.Unmarshal(b, &s); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, nil
	}
	return &s, true, nil
}

// Set stores stats for the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats *models.DashboardStats) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, statsKey, b, c.ttl)
}

// Invalidate drops the cached snapshot.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.store.Delete(ctx, statsKey)
}
