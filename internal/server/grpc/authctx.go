package grpcserver

import (
	"context"

	"github.com/and161185/epic-events/internal/model"
)

type ctxKey string

const actorKey ctxKey = "crm.actor"

// WithActor stores the authenticated collaborator in context.
func WithActor(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, actorKey, u)
}

// ActorFromCtx fetches the authenticated collaborator from context.
func ActorFromCtx(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(actorKey).(*model.User)
	return u, ok && u != nil
}
