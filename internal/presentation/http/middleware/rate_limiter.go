package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/config"
)

// RestaurantRateLimiter provides per-restaurant rate limiting so one busy
// property cannot starve the others.
type RestaurantRateLimiter struct {
	limiters    map[uuid.UUID]*rateLimiterEntry
	mu          sync.RWMutex
	rate        rate.Limit
	burst       int
	cleanupTick time.Duration
	entryTTL    time.Duration
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRestaurantRateLimiter builds a limiter from the rate limit config.
// Requests is the burst size, Duration the refill window in seconds.
func NewRestaurantRateLimiter(cfg config.RateLimitConfig) *RestaurantRateLimiter {
	requests := cfg.Requests
	if requests <= 0 {
		requests = 100
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = 60
	}

	rl := &RestaurantRateLimiter{
		limiters:    make(map[uuid.UUID]*rateLimiterEntry),
		rate:        rate.Limit(float64(requests) / float64(duration)),
		burst:       requests,
		cleanupTick: 5 * time.Minute,
		entryTTL:    10 * time.Minute,
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RestaurantRateLimiter) getLimiter(restaurantID uuid.UUID) *rate.Limiter {
	rl.mu.RLock()
	entry, exists := rl.limiters[restaurantID]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		entry.lastSeen = time.Now()
		rl.mu.Unlock()
		return entry.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double check after acquiring the write lock
	if entry, exists := rl.limiters[restaurantID]; exists {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[restaurantID] = &rateLimiterEntry{
		limiter:  limiter,
		lastSeen: time.Now(),
	}

	return limiter
}

func (rl *RestaurantRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RestaurantRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.entryTTL)
	for restaurantID, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, restaurantID)
		}
	}
}

// Middleware returns a Gin middleware that applies per-restaurant rate
// limiting, keyed by the restaurant scope set by AuthMiddleware.
func (rl *RestaurantRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := GetRestaurantScope(c)
		if restaurantID == uuid.Nil {
			c.Next()
			return
		}

		limiter := rl.getLimiter(restaurantID)

		if !limiter.Allow() {
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded. Please try again later.",
				"error":   "too_many_requests",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
