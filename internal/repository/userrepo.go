// Package repository defines storage interfaces implemented by concrete backends.
//
// Update methods load the current row under a lock, hand it to a mutate
// callback and persist only the fields of the returned patch, all inside one
// transaction. The callback is where services check ownership and validate
// prospective values; an error from it aborts the update unchanged.
package repository

import (
	"context"

	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides CRUD access for collaborators.
type UserRepository interface {
	// Create inserts a new user; a taken email yields errs.ErrAlreadyExists.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// List returns all users ordered by creation.
	List(ctx context.Context) ([]model.User, error)
	// Update applies the patch returned by mutate.
	Update(ctx context.Context, id uuid.UUID, mutate func(cur model.User) (model.UserPatch, error)) (*model.User, error)
	// Delete removes a user; one still owning clients yields errs.ErrConflict.
	Delete(ctx context.Context, id uuid.UUID) error
}
