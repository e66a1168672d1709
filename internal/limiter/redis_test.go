package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T, opts Options) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, opts), mr
}

func TestRedisLimiter_BlocksAfterMaxFails(t *testing.T) {
	l, mr := newRedis(t, Options{Window: time.Minute, MaxFails: 3, BlockFor: 10 * time.Minute})
	ctx := context.Background()
	h := HashIP("10.0.0.1:1234")

	for i := 0; i < 2; i++ {
		blocked, _, err := l.Failure(ctx, "a@epic.io", h)
		require.NoError(t, err)
		require.False(t, blocked)
	}
	ok, _, err := l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, ok)

	blocked, dur, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, blocked)
	require.Equal(t, 10*time.Minute, dur)

	ok, retry, err := l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, ok)
	require.Greater(t, retry, time.Duration(0))

	// another address for the same account is unaffected
	ok, _, err = l.Allow(ctx, "a@epic.io", HashIP("10.0.0.2"))
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(11 * time.Minute)
	ok, _, err = l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisLimiter_WindowExpiresFailures(t *testing.T) {
	l, mr := newRedis(t, Options{Window: time.Minute, MaxFails: 2, BlockFor: time.Hour})
	ctx := context.Background()
	h := HashIP("10.0.0.1")

	blocked, _, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, blocked)

	mr.FastForward(2 * time.Minute)
	blocked, _, err = l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestRedisLimiter_SuccessResets(t *testing.T) {
	l, _ := newRedis(t, Options{Window: time.Minute, MaxFails: 2, BlockFor: time.Hour})
	ctx := context.Background()
	h := HashIP("10.0.0.1")

	_, _, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.NoError(t, l.Success(ctx, "a@epic.io", h))

	blocked, _, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, blocked)
}

func TestRedisLimiter_CounterAlwaysExpires(t *testing.T) {
	l, mr := newRedis(t, Options{Window: time.Minute, MaxFails: 5, BlockFor: time.Hour})
	ctx := context.Background()
	h := HashIP("10.0.0.1")
	fails, _ := l.keys("a@epic.io", h)

	_, _, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.Equal(t, time.Minute, mr.TTL(fails))

	// later failures keep the window anchored at the first one
	mr.FastForward(20 * time.Second)
	_, _, err = l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.Equal(t, 40*time.Second, mr.TTL(fails))
	n, err := mr.Get(fails)
	require.NoError(t, err)
	require.Equal(t, "2", n)
}
