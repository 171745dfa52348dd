package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow = 10 * time.Minute
	defaultLimit  = 5
)

// SubmissionLimiter provides a fixed-window rate limit for public form
// submissions, backed by Redis.
// Key format: ratelimit:<scope>:<client_ip>:<window_start>
type SubmissionLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewSubmissionLimiter creates a SubmissionLimiter wrapping the given Redis
// client with the default window and limit.
func NewSubmissionLimiter(client *redis.Client) *SubmissionLimiter {
	return &SubmissionLimiter{client: client, window: defaultWindow, limit: defaultLimit}
}

// Allow counts this submission and reports whether it stays within the
// window's budget.
func (l *SubmissionLimiter) Allow(ctx context.Context, scope, clientIP string) (bool, error) {
	key := l.key(scope, clientIP, time.Now())

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window owns the expiry.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *SubmissionLimiter) key(scope, clientIP string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, clientIP, windowStart)
}
