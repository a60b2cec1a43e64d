package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter counts requests per IP, method and route in Redis. Without a
// Redis client it falls back to an in-process token bucket per IP.
func RateLimiter(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return localRateLimiter(maxRequests, window)
	}

	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		count, resetAt, err := hitWindow(c.Request.Context(), rdb, key, window)
		if err != nil {
			// Fail open; a Redis hiccup should not take the API down.
			config.Log.Warn("[rate-limit] redis unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !applyRate(c, maxRequests, int(count), resetAt) {
			return
		}
		c.Next()
	}
}

// hitWindow counts one request against key. The counter and its TTL are
// created together in one MULTI, so a counter never outlives its window.
func hitWindow(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, time.Time, error) {
	pipe := rdb.TxPipeline()
	pipe.SetNX(ctx, key, 0, window)
	incr := pipe.Incr(ctx, key)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		// Key left without a TTL by an older deployment.
		if err := rdb.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}

// applyRate publishes the snapshot and rejects the request over the limit.
func applyRate(c *gin.Context, maxRequests, count int, resetAt time.Time) bool {
	remaining := maxRequests - count
	if remaining < 0 {
		remaining = 0
	}
	resetInSeconds := int(time.Until(resetAt).Seconds())
	if resetInSeconds < 0 {
		resetInSeconds = 0
	}

	snapshot := &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetInSeconds,
	}
	c.Set(models.RateLimiterKey, snapshot)

	if count > maxRequests {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
			Message: "Too many requests",
			Error:   true,
			Rate:    snapshot,
		})
		return false
	}
	return true
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiters struct {
	mu        sync.Mutex
	ips       map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

// get returns the limiter for ip, dropping entries idle longer than ttl.
func (l *ipLimiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.ttl {
		for k, e := range l.ips {
			if now.Sub(e.lastSeen) > l.ttl {
				delete(l.ips, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.ips[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.ips[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

func localRateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests < 1 {
		maxRequests = 1
	}
	limiters := &ipLimiters{
		ips:       make(map[string]*limiterEntry),
		limit:     rate.Every(window / time.Duration(maxRequests)),
		burst:     maxRequests,
		ttl:       5 * window,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		now := time.Now()
		lim := limiters.get(c.ClientIP(), now)

		count := maxRequests - int(lim.TokensAt(now))
		if lim.AllowN(now, 1) {
			count++
		} else {
			count = maxRequests + 1
		}

		if !applyRate(c, maxRequests, count, now.Add(window)) {
			return
		}
		c.Next()
	}
}
