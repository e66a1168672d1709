package limiter

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// countFailure increments the counter and, on the first failure, starts the
// window. Running both in one script keeps a counter from outliving its TTL.
var countFailure = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// Redis keeps failure counters and blocks in Redis keys with TTLs, so state
// is shared across server replicas and expires on its own.
type Redis struct {
	client redis.UniversalClient
	prefix string
	opts   Options
}

// NewRedis constructs a Redis-backed limiter.
func NewRedis(client redis.UniversalClient, opts Options) *Redis {
	return &Redis{client: client, prefix: "crm:login:", opts: opts.withDefaults()}
}

func (l *Redis) keys(email string, ipHash []byte) (fails, block string) {
	base := l.prefix + email + ":" + hex.EncodeToString(ipHash)
	return base + ":fails", base + ":block"
}

// Allow reports whether login is currently allowed and a retry-after duration.
func (l *Redis) Allow(ctx context.Context, email string, ipHash []byte) (bool, time.Duration, error) {
	_, block := l.keys(email, ipHash)
	ttl, err := l.client.PTTL(ctx, block).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, err
	}
	if ttl > 0 {
		return false, ttl, nil
	}
	return true, 0, nil
}

// Success clears counters for (email, ip).
func (l *Redis) Success(ctx context.Context, email string, ipHash []byte) error {
	fails, block := l.keys(email, ipHash)
	return l.client.Del(ctx, fails, block).Err()
}

// Failure records a failed attempt; reaching MaxFails within Window blocks for BlockFor.
func (l *Redis) Failure(ctx context.Context, email string, ipHash []byte) (bool, time.Duration, error) {
	fails, block := l.keys(email, ipHash)
	n, err := countFailure.Run(ctx, l.client, []string{fails}, l.opts.Window.Milliseconds()).Int64()
	if err != nil {
		return false, 0, err
	}
	if n < int64(l.opts.MaxFails) {
		return false, 0, nil
	}
	pipe := l.client.TxPipeline()
	pipe.Set(ctx, block, 1, l.opts.BlockFor)
	pipe.Del(ctx, fails)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	return true, l.opts.BlockFor, nil
}
