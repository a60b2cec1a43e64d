package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/redis/go-redis/v9"
)

const (
	analyticsCachePrefix = "analytics:"
	AnalyticsCacheTTL    = 60 * time.Second
)

// AnalyticsCache memoizes analytics responses in Redis. A nil client turns
// every call into a miss or a no-op.
type AnalyticsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCache(rdb *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{rdb: rdb, ttl: AnalyticsCacheTTL}
}

func analyticsKey(r models.TimeRange, day string) string {
	return analyticsCachePrefix + day + ":" + string(r)
}

// Get returns the cached data and whether it was found.
func (c *AnalyticsCache) Get(ctx context.Context, r models.TimeRange, day string) (*models.AnalyticsData, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, analyticsKey(r, day)).Bytes()
	if err != nil {
		return nil, false
	}
	var data models.AnalyticsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	return &data, true
}

func (c *AnalyticsCache) Set(ctx context.Context, r models.TimeRange, day string, data models.AnalyticsData) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, analyticsKey(r, day), raw, c.ttl).Err()
}

// Invalidate drops every cached analytics response.
func (c *AnalyticsCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, analyticsCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

var analyticsCache *AnalyticsCache

// InitAnalyticsCache installs the process-wide cache; rdb may be nil.
func InitAnalyticsCache(rdb *redis.Client) {
	analyticsCache = NewAnalyticsCache(rdb)
}

// GetAnalyticsCache never returns a cache that panics; a nil result is a
// valid no-op cache.
func GetAnalyticsCache() *AnalyticsCache {
	return analyticsCache
}
