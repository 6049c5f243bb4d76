package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"golf-caddy-core/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientIdleTTL     = 5 * time.Minute
)

// RateLimit applies a per-client token bucket. Disabled limits pass every
// request through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.RateLimit.Enabled {
			c.Next()
			return
		}

		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, evicting idle clients so
// memory stays bounded.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	if burst <= 0 {
		burst = requestsPerMin / 10
		if burst == 0 {
			burst = 1
		}
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
