// Package notify delivers business notifications (contract signed, user
// changes) to out-of-band sinks. Delivery is best-effort: callers log sink
// errors and never fail the business operation because of them.
package notify

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Severity ranks a notification.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
)

// Notification is a single message for the monitoring channel.
type Notification struct {
	Kind     string            `json:"kind"`
	Message  string            `json:"message"`
	Severity Severity          `json:"severity"`
	Fields   map[string]string `json:"fields,omitempty"`
	At       time.Time         `json:"at"`
}

// Sink receives notifications.
type Sink interface {
	Emit(ctx context.Context, n Notification) error
}

// Logger writes notifications to a zap logger.
type Logger struct {
	log *zap.Logger
}

// NewLogger returns a sink that logs under the "notify" name.
func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("notify")}
}

// Emit implements Sink.
func (l *Logger) Emit(_ context.Context, n Notification) error {
	fields := make([]zap.Field, 0, len(n.Fields)+1)
	fields = append(fields, zap.String("kind", n.Kind))
	for k, v := range n.Fields {
		fields = append(fields, zap.String(k, v))
	}
	if n.Severity == Warning {
		l.log.Warn(n.Message, fields...)
	} else {
		l.log.Info(n.Message, fields...)
	}
	return nil
}

// Multi fans a notification out to every sink and joins their errors.
type Multi []Sink

// Emit implements Sink.
func (m Multi) Emit(ctx context.Context, n Notification) error {
	var errList []error
	for _, s := range m {
		if err := s.Emit(ctx, n); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
