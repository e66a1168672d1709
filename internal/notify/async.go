package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const deliverTimeout = 5 * time.Second

// Async decouples Emit from the wrapped sink through a bounded queue.
// When the queue is full the notification is dropped and logged.
type Async struct {
	next  Sink
	log   *zap.Logger
	queue chan Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewAsync starts one delivery worker for next.
func NewAsync(next Sink, size int, log *zap.Logger) *Async {
	if size <= 0 {
		size = 64
	}
	a := &Async{
		next:  next,
		log:   log,
		queue: make(chan Notification, size),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

// Emit enqueues n without blocking. It never returns an error.
func (a *Async) Emit(_ context.Context, n Notification) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		a.log.Warn("notification after close dropped", zap.String("kind", n.Kind))
		return nil
	}
	select {
	case a.queue <- n:
	default:
		a.log.Warn("notification queue full, dropped", zap.String("kind", n.Kind))
	}
	return nil
}

// Close stops accepting notifications and waits for queued ones to be delivered
// or for ctx to end.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Async) run() {
	defer close(a.done)
	for n := range a.queue {
		a.deliver(n)
	}
}

func (a *Async) deliver(n Notification) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("notification sink panic", zap.Any("reason", r), zap.String("kind", n.Kind))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()
	if err := a.next.Emit(ctx, n); err != nil {
		a.log.Warn("notification delivery failed", zap.String("kind", n.Kind), zap.Error(err))
	}
}
