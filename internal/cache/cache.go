package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/config"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/logger"
)

// NewClient connects to Redis. Returns nil when caching is not configured;
// callers treat a nil client as cache-disabled.
func NewClient(cfg *config.Config) *redis.Client {
	if !cfg.CacheEnabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.L().Warn("redis unreachable, running without cache", zap.Error(err))
		return nil
	}

	return client
}
