package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/guard"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/and161185/epic-events/internal/repository"
	"github.com/and161185/epic-events/internal/validate"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// UserService manages collaborator accounts. Mutations are reserved to gestion.
type UserService interface {
	Create(ctx context.Context, actor *model.User, in model.NewUser) (*model.User, error)
	List(ctx context.Context, actor *model.User) ([]model.User, error)
	// Get returns nil without error when the user does not exist.
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail returns nil without error when the user does not exist.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, in model.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
	// Bootstrap creates a gestion superuser unless the email is already taken.
	Bootstrap(ctx context.Context, email, password, name string) (*model.User, bool, error)
}

type UserServiceImpl struct {
	users  repository.UserRepository
	hasher PasswordHasher
	v      *validate.Validator
	sink   notify.Sink
	log    *zap.Logger
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository, hasher PasswordHasher, v *validate.Validator, sink notify.Sink, log *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{users: users, hasher: hasher, v: v, sink: sink, log: log}
}

// Create validates and stores a new collaborator with a hashed password.
func (s *UserServiceImpl) Create(ctx context.Context, actor *model.User, in model.NewUser) (*model.User, error) {
	if err := authorize(s.log, "user.create", actor, model.RoleGestion); err != nil {
		return nil, err
	}
	return s.create(ctx, in)
}

func (s *UserServiceImpl) create(ctx context.Context, in model.NewUser) (*model.User, error) {
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		PwdHash:     hash,
		Department:  in.Department,
		Role:        in.Role,
		IsSuperuser: in.IsSuperuser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	emit(ctx, s.sink, s.log, notify.Notification{
		Kind:    "user.created",
		Message: "user created: " + u.Email,
		Fields:  map[string]string{"user_id": u.ID.String(), "role": string(u.Role)},
	})
	return u, nil
}

// List returns every collaborator.
func (s *UserServiceImpl) List(ctx context.Context, actor *model.User) ([]model.User, error) {
	return guard.Run(actor, []model.Role{model.RoleGestion}, func() ([]model.User, error) {
		return s.users.List(ctx)
	})
}

// Get looks a user up by id.
func (s *UserServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return absentAsNil(s.users.GetByID(ctx, id))
}

// GetByEmail looks a user up by email.
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return absentAsNil(s.users.GetByEmail(ctx, email))
}

// Update re-validates touched fields and rehashes a new password.
func (s *UserServiceImpl) Update(ctx context.Context, actor *model.User, id uuid.UUID, in model.UserUpdate) (*model.User, error) {
	if err := authorize(s.log, "user.update", actor, model.RoleGestion); err != nil {
		return nil, err
	}
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	var changed bool
	u, err := s.users.Update(ctx, id, func(model.User) (model.UserPatch, error) {
		p := model.UserPatch{Name: in.Name, Email: in.Email, Department: in.Department, Role: in.Role}
		if in.Password != nil {
			hash, err := s.hasher.Hash(*in.Password)
			if err != nil {
				return model.UserPatch{}, err
			}
			p.PwdHash = &hash
		}
		changed = !p.Empty()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return u, nil
	}
	emit(ctx, s.sink, s.log, notify.Notification{
		Kind:    "user.updated",
		Message: "user updated: " + u.Email,
		Fields:  map[string]string{"user_id": u.ID.String(), "by": actor.Email},
	})
	return u, nil
}

// Delete removes a collaborator. Supported events are unassigned; owned clients block it.
func (s *UserServiceImpl) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if err := authorize(s.log, "user.delete", actor, model.RoleGestion); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return fmt.Errorf("%w: user still owns clients", err)
		}
		return err
	}
	s.log.Info("user deleted", zap.Stringer("user", id), zap.Stringer("by", actor.ID))
	return nil
}

// Bootstrap creates the first gestion superuser. created is false when the email already exists.
func (s *UserServiceImpl) Bootstrap(ctx context.Context, email, password, name string) (*model.User, bool, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	u, err := s.create(ctx, model.NewUser{
		Name:        name,
		Email:       email,
		Password:    password,
		Department:  string(model.RoleGestion),
		Role:        model.RoleGestion,
		IsSuperuser: true,
	})
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func absentAsNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
