package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the optional Redis cache and returns the client,
// nil when no REDIS_ADDR is configured or the server is unreachable.
// Failure is not fatal: the API works without caching or login rate
// limiting, so callers must treat the client as best-effort.
func InitRedis(cfg *RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to Redis: %v. Caching disabled.\n", err)
		return nil
	}

	fmt.Println("Redis connected successfully:", pong)
	return client
}
