package service

import (
	"context"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/repository"
	"github.com/and161185/epic-events/internal/validate"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// ClientService manages clients. A client always belongs to the sales contact that created it.
type ClientService interface {
	Create(ctx context.Context, actor *model.User, in model.NewClient) (*model.Client, error)
	// List shows sales actors their own clients and everyone else all clients.
	List(ctx context.Context, actor *model.User) ([]model.Client, error)
	// Get returns nil without error when the client does not exist.
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.ClientPatch) (*model.Client, error)
}

type ClientServiceImpl struct {
	clients repository.ClientRepository
	v       *validate.Validator
	log     *zap.Logger
}

// NewClientService constructs ClientService.
func NewClientService(clients repository.ClientRepository, v *validate.Validator, log *zap.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{clients: clients, v: v, log: log}
}

// Create stores a client owned by actor.
func (s *ClientServiceImpl) Create(ctx context.Context, actor *model.User, in model.NewClient) (*model.Client, error) {
	if err := authorize(s.log, "client.create", actor, model.RoleSales, model.RoleGestion); err != nil {
		return nil, err
	}
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	c := &model.Client{
		ID:             id,
		Name:           in.Name,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
		CompanyName:    in.CompanyName,
		SalesContactID: actor.ID,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the clients visible to actor.
func (s *ClientServiceImpl) List(ctx context.Context, actor *model.User) ([]model.Client, error) {
	if actor == nil {
		return nil, errs.ErrUnauthenticated
	}
	var f model.ClientFilter
	if actor.Role == model.RoleSales {
		f.SalesContactID = &actor.ID
	}
	return s.clients.List(ctx, f)
}

// Get looks a client up by id.
func (s *ClientServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return absentAsNil(s.clients.GetByID(ctx, id))
}

// Update patches a client. Sales actors may only patch their own.
func (s *ClientServiceImpl) Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.ClientPatch) (*model.Client, error) {
	if err := authorize(s.log, "client.update", actor, model.RoleSales, model.RoleGestion); err != nil {
		return nil, err
	}
	return s.clients.Update(ctx, id, func(cur model.Client) (model.ClientPatch, error) {
		if err := ownsClient(actor, cur.SalesContactID); err != nil {
			return model.ClientPatch{}, err
		}
		if err := s.v.Struct(p); err != nil {
			return model.ClientPatch{}, err
		}
		return p, nil
	})
}
