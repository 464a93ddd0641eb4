// ratelimit.go implements per-client rate limiting using a token
// bucket algorithm.
//
// How token bucket works:
// - Each client IP gets a "bucket" with N tokens (the hourly limit)
// - Each analysis request consumes 1 token
// - Tokens refill at a steady rate (N tokens per hour)
// - An empty bucket means 429 Too Many Requests
//
// Submissions are anonymous, so the client IP is the only identity we
// have; this exists to keep one visitor from draining the Gemini
// quota, not to be airtight.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter tracks request rates per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   float64
}

// bucket tracks the token state for a single client.
type bucket struct {
	tokens     float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter allowing requestsPerHour per
// client IP and starts its background cleanup.
func NewRateLimiter(requestsPerHour int) *RateLimiter {
	if requestsPerHour <= 0 {
		requestsPerHour = 30
	}

	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   float64(requestsPerHour),
	}

	go rl.cleanup()

	return rl
}

// Limit returns Gin middleware that enforces the per-IP limit. The
// rejection is an HTML page, not JSON, since the caller is a browser form.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.HTML(http.StatusTooManyRequests, "index.html", gin.H{
				"Error": "Too many analysis requests from your address. Wait a bit and try again.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// allow checks and consumes one token for the given client.
func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[clientIP]
	if !exists {
		b = &bucket{
			tokens:     rl.limit,
			refillRate: rl.limit / 3600.0,
			lastRefill: time.Now(),
		}
		rl.buckets[clientIP] = b
	}

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > rl.limit {
		b.tokens = rl.limit
	}
	b.lastRefill = now

	if b.tokens < 1.0 {
		return false
	}
	b.tokens--
	return true
}

// cleanup periodically removes stale buckets to prevent memory growth.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, b := range rl.buckets {
			if now.Sub(b.lastRefill) > time.Hour {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}
