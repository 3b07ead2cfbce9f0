package middleware

import (
	"net/http"
	"sync"

	coreport "github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the number of per-IP limiters kept in memory
const maxTrackedClients = 10000

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	logger   coreport.Logger
}

// NewRateLimiter allows perMinute submissions per client with the given burst
func NewRateLimiter(perMinute, burst int, logger coreport.Logger) (*RateLimiter, error) {
	cache, err := lru.New[string, *rate.Limiter](maxTrackedClients)
	if err != nil {
		return nil, err
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: cache,
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
		logger:   logger,
	}, nil
}

// Allow reports whether ip may make another request now
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	limiter, ok := r.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters.Add(ip, limiter)
	}
	r.mu.Unlock()
	return limiter.Allow()
}

// RateLimit rejects requests over the client's budget and hands them to onLimited
func RateLimit(limiter *RateLimiter, onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			limiter.logger.Warn("Rate limit exceeded", map[string]any{
				"ip":         ip,
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			c.Status(http.StatusTooManyRequests)
			onLimited(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
