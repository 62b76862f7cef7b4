// Package ratelimiter provides a fixed-window attempt limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterInterface limits how often an operation may run for a given key.
type RateLimiterInterface interface {
	Allow(key string) bool
}

// RateLimiter counts attempts per key in fixed windows. It is used to slow
// password guessing against protected share links, keyed by client IP + slug.
type RateLimiter struct {
	limit    int           // attempts allowed per window
	interval time.Duration // window length

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	start time.Time
}

// NewRateLimiter creates a new RateLimiter allowing limit attempts per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow records an attempt for the key and reports whether it is within the
// limit for the current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		// Opportunistically drop stale windows so the map does not grow
		// unbounded under slug enumeration.
		if len(rl.windows) > 10000 {
			for k, old := range rl.windows {
				if now.Sub(old.start) >= rl.interval {
					delete(rl.windows, k)
				}
			}
		}
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}
