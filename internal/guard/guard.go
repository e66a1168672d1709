// Package guard enforces role-based access before an operation runs.
package guard

import (
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
)

// Require checks that actor may run an operation restricted to allowed roles.
// Superusers pass regardless of role.
func Require(actor *model.User, allowed ...model.Role) error {
	if actor == nil {
		return errs.ErrUnauthenticated
	}
	if actor.IsSuperuser {
		return nil
	}
	for _, r := range allowed {
		if actor.Role == r {
			return nil
		}
	}
	return errs.Forbiddenf("role %q may not perform this operation", actor.Role)
}

// Run executes op only if Require passes. op is never invoked on denial.
func Run[T any](actor *model.User, allowed []model.Role, op func() (T, error)) (T, error) {
	if err := Require(actor, allowed...); err != nil {
		var zero T
		return zero, err
	}
	return op()
}
