package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// RedisClient stays nil when REDIS_URL is unset; callers must handle that.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(app AppConfig) {
	if app.RedisURL == "" {
		Log.Warn("REDIS_URL not set, rate limiting falls back to in-process and analytics caching is off")
		return
	}

	opt, err := redis.ParseURL(app.RedisURL)
	if err != nil {
		Log.Fatal("invalid REDIS_URL", zap.Error(err))
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		Log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	Log.Info("Connected to Redis", zap.String("ping", res))
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
