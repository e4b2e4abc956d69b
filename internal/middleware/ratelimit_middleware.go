package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	invalidAuthBurst  = 5
	invalidAuthWindow = time.Minute
)

// InvalidAuthRateLimiter throttles clients that keep presenting bad session
// tokens: 5 attempts per minute per IP.
type InvalidAuthRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
}

type attemptInfo struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewInvalidAuthRateLimiter() *InvalidAuthRateLimiter {
	return &InvalidAuthRateLimiter{attempts: make(map[string]*attemptInfo)}
}

// Allow checks if IP can make another attempt.
func (r *InvalidAuthRateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists {
		info = &attemptInfo{
			limiter: rate.NewLimiter(rate.Every(invalidAuthWindow/invalidAuthBurst), invalidAuthBurst),
		}
		r.attempts[ip] = info
	}
	info.lastSeen = now
	return info.limiter.AllowN(now, 1)
}

// Run drops idle entries every interval until ctx is done.
func (r *InvalidAuthRateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(time.Now())
		}
	}
}

func (r *InvalidAuthRateLimiter) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ip, info := range r.attempts {
		if now.Sub(info.lastSeen) > invalidAuthWindow {
			delete(r.attempts, ip)
		}
	}
}
