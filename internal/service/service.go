// Package service contains the CRM application services. Every operation
// receives the acting user explicitly and passes the role guard before any
// repository call; row-level ownership is checked inside repository update
// callbacks so it is evaluated on the locked row.
package service

import (
	"context"
	"time"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/guard"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// PasswordHasher hashes and verifies collaborator passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) bool
}

// SessionCodec issues and resolves bearer tokens.
type SessionCodec interface {
	Issue(userID uuid.UUID, role model.Role) (model.Session, error)
	Resolve(token string) (model.Claims, error)
}

// authorize runs the role guard and records denials.
func authorize(log *zap.Logger, op string, actor *model.User, allowed ...model.Role) error {
	err := guard.Require(actor, allowed...)
	if err != nil && actor != nil {
		log.Debug("authorization denied",
			zap.String("op", op),
			zap.Stringer("actor", actor.ID),
			zap.String("role", string(actor.Role)),
		)
	}
	return err
}

// ownsClient enforces that a sales actor only touches its own clients.
func ownsClient(actor *model.User, salesContactID uuid.UUID) error {
	if actor.Role == model.RoleSales && salesContactID != actor.ID {
		return errs.Forbiddenf("client is owned by another sales contact")
	}
	return nil
}

// emit delivers n best-effort; sink failures are logged and swallowed.
func emit(ctx context.Context, sink notify.Sink, log *zap.Logger, n notify.Notification) {
	if sink == nil {
		return
	}
	if n.At.IsZero() {
		n.At = time.Now().UTC()
	}
	if n.Severity == "" {
		n.Severity = notify.Info
	}
	if err := sink.Emit(ctx, n); err != nil {
		log.Warn("notification failed", zap.String("kind", n.Kind), zap.Error(err))
	}
}

func newID() (uuid.UUID, error) {
	return uuid.NewV4()
}

func ptr[T any](v T) *T { return &v }
