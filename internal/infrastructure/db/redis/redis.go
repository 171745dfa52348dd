// Package redis holds the Redis client setup and the submission rate limiter.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Config carries the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds a Redis client and verifies it with a ping before returning.
// The limiter fails open when Redis is down, so a broken address surfaces here
// at startup rather than silently disabling rate limits.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
