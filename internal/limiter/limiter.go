// Package limiter defines interfaces and implementations for login rate limiting.
package limiter

import (
	"context"
	"crypto/sha256"
	"net"
	"time"
)

// Limiter controls login attempts and temporary lockouts per (email, client address).
type Limiter interface {
	// Allow reports whether login is currently allowed and optional retry-after.
	Allow(ctx context.Context, email string, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful login.
	Success(ctx context.Context, email string, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, email string, ipHash []byte) (bool, time.Duration, error)
}

// Options tune the sliding window and the lockout.
type Options struct {
	Window   time.Duration // failures older than this are forgotten
	MaxFails int           // failures within Window that trigger a block
	BlockFor time.Duration
}

// DefaultOptions block for 15 minutes after 5 failures within 15 minutes.
var DefaultOptions = Options{Window: 15 * time.Minute, MaxFails: 5, BlockFor: 15 * time.Minute}

func (o Options) withDefaults() Options {
	if o.Window <= 0 {
		o.Window = DefaultOptions.Window
	}
	if o.MaxFails <= 0 {
		o.MaxFails = DefaultOptions.MaxFails
	}
	if o.BlockFor <= 0 {
		o.BlockFor = DefaultOptions.BlockFor
	}
	return o
}

// HashIP returns a stable hash of the host part of addr so raw addresses are never stored.
// The port is dropped because every new connection gets a different one.
func HashIP(addr string) []byte {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	sum := sha256.Sum256([]byte(host))
	return sum[:]
}
