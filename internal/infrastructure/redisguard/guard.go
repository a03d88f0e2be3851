package redisguard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSubmissionGuard holds a short-lived SETNX lock per customer so
// concurrent submissions from one chat are processed one at a time.
// The TTL bounds the lock even if Release is never reached.
type DefaultSubmissionGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDefaultSubmissionGuard(client *redis.Client, ttl time.Duration) *DefaultSubmissionGuard {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &DefaultSubmissionGuard{client: client, ttl: ttl}
}

func (g *DefaultSubmissionGuard) Acquire(ctx context.Context, customerID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(customerID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submission guard: %w", err)
	}
	return ok, nil
}

func (g *DefaultSubmissionGuard) Release(ctx context.Context, customerID string) {
	g.client.Del(ctx, g.key(customerID))
}

func (g *DefaultSubmissionGuard) key(customerID string) string {
	return "loyalty:submission:inflight:" + customerID
}
