package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	defaultChannel    = "crm:notifications"
	defaultLogKey     = "crm:notifications:log"
	defaultMaxEntries = 1000
)

// RedisOptions controls Redis sink behavior.
type RedisOptions struct {
	Channel    string
	LogKey     string
	MaxEntries int64
}

// Redis appends notifications to a capped list and publishes them on a channel.
type Redis struct {
	client     redis.UniversalClient
	channel    string
	logKey     string
	maxEntries int64
}

// NewRedis constructs a Redis-backed sink.
func NewRedis(client redis.UniversalClient, opts RedisOptions) (*Redis, error) {
	if client == nil {
		return nil, errors.New("notify: redis client is required")
	}
	r := &Redis{
		client:     client,
		channel:    opts.Channel,
		logKey:     opts.LogKey,
		maxEntries: opts.MaxEntries,
	}
	if r.channel == "" {
		r.channel = defaultChannel
	}
	if r.logKey == "" {
		r.logKey = defaultLogKey
	}
	if r.maxEntries <= 0 {
		r.maxEntries = defaultMaxEntries
	}
	return r, nil
}

// Emit implements Sink.
func (r *Redis) Emit(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.logKey, payload)
	pipe.LTrim(ctx, r.logKey, 0, r.maxEntries-1)
	pipe.Publish(ctx, r.channel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("notify: redis: %w", err)
	}
	return nil
}
