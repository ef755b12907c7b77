package oauth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter enforces a per-client-address budget for outbound provider
// calls. Each address gets an independent token bucket refilled at the
// configured per-minute rate.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewClientLimiter constructs a limiter allowing ratePerMinute requests per
// client address per minute.
func NewClientLimiter(ratePerMinute int) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(ratePerMinute)),
		burst:    ratePerMinute,
	}
}

// Allow reports whether the given client address may perform another
// provider call right now.
func (l *ClientLimiter) Allow(addr string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[addr]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[addr] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
