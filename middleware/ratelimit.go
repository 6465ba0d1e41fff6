package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"portfolio-server/security"
)

// limiterEntry tracks a per-client limiter and when it was last used so
// idle entries can be pruned.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter implements per-IP rate limiting
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	r       rate.Limit
	b       int
}

const limiterIdleTTL = 10 * time.Minute

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       rate.Limit(requestsPerSecond),
		b:       burst,
	}
}

// getLimiter returns the rate limiter for a given IP, pruning entries not
// seen within the idle TTL.
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.entries {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(rl.entries, key)
		}
	}

	entry, exists := rl.entries[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.r, rl.b)}
		rl.entries[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// Limit is a middleware that rate limits requests
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.getLimiter(security.ClientIP(r))

		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			http.Error(w, `{"error": "Rate limit exceeded. Please try again later."}`, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
