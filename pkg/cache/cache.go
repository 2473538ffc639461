// Package cache wraps Redis for read-through caching of hot lookups
// (the public menu tree, primarily). All operations degrade gracefully:
// when Redis is unreachable or never connected, Get misses and Set/Del
// are no-ops, so the application works without a cache.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/verandah/config"
	"github.com/shashiranjanraj/verandah/pkg/logger"
)

var client *redis.Client

// Connect establishes the Redis connection. A failure is logged and the
// cache stays disabled; it is never fatal.
func Connect(ctx context.Context) {
	c := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})

	if err := c.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, cache disabled", "addr", config.RedisAddr(), "error", err.Error())
		return
	}

	client = c
	logger.Info("redis connected", "addr", config.RedisAddr())
}

// Close releases the Redis connection.
func Close() {
	if client != nil {
		_ = client.Close()
		client = nil
	}
}

// Get returns the cached value for key, or ("", false) on miss or when
// the cache is disabled.
func Get(ctx context.Context, key string) (string, bool) {
	if client == nil {
		return "", false
	}

	val, err := client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("cache get failed", "key", key, "error", err.Error())
		}
		return "", false
	}
	return val, true
}

// Set stores value under key with the given TTL.
func Set(ctx context.Context, key, value string, ttl time.Duration) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn("cache set failed", "key", key, "error", err.Error())
	}
}

// Del removes keys from the cache. Used to invalidate the menu tree after
// a menu or category write.
func Del(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("cache del failed", "error", err.Error())
	}
}
