package redisguard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*DefaultSubmissionGuard, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDefaultSubmissionGuard(client, 5*time.Second), server
}

func TestAcquire_FirstWinsSecondRejected(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	first, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	assert.False(t, second)
}

func TestAcquire_IsolatedPerCustomer(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	acquired, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	require.True(t, acquired)

	other, err := guard.Acquire(ctx, "cust-2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestRelease_AllowsReacquire(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	acquired, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	require.True(t, acquired)

	guard.Release(ctx, "cust-1")

	again, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestAcquire_LockExpiresByTTL(t *testing.T) {
	guard, server := newTestGuard(t)
	ctx := context.Background()

	acquired, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	require.True(t, acquired)

	server.FastForward(6 * time.Second)

	again, err := guard.Acquire(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestAcquire_RedisDownReturnsError(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	guard := NewDefaultSubmissionGuard(client, time.Second)
	server.Close()

	_, err := guard.Acquire(context.Background(), "cust-1")
	assert.Error(t, err)
}
