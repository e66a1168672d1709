package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/notify"
	"github.com/and161185/epic-events/internal/repository"
	"github.com/and161185/epic-events/internal/validate"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// ContractService manages contracts and their pending -> signed lifecycle.
type ContractService interface {
	Create(ctx context.Context, actor *model.User, in model.NewContract) (*model.Contract, error)
	List(ctx context.Context, actor *model.User, opts model.ContractListOptions) ([]model.Contract, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.ContractPatch) (*model.Contract, error)
}

type ContractServiceImpl struct {
	contracts repository.ContractRepository
	clients   repository.ClientRepository
	sink      notify.Sink
	log       *zap.Logger
}

// NewContractService constructs ContractService.
func NewContractService(contracts repository.ContractRepository, clients repository.ClientRepository, sink notify.Sink, log *zap.Logger) *ContractServiceImpl {
	return &ContractServiceImpl{contracts: contracts, clients: clients, sink: sink, log: log}
}

// Create stores a contract for an existing client. Status defaults to pending.
func (s *ContractServiceImpl) Create(ctx context.Context, actor *model.User, in model.NewContract) (*model.Contract, error) {
	if err := authorize(s.log, "contract.create", actor, model.RoleGestion); err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(ctx, in.ClientID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.NotFoundf("client %s", in.ClientID)
	}
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}
	if err := validate.Status(in.Status); err != nil {
		return nil, err
	}
	if err := validate.Amounts(in.TotalAmount, in.RemainingAmount); err != nil {
		return nil, err
	}
	in.TotalAmount, in.RemainingAmount = in.TotalAmount.Round(2), in.RemainingAmount.Round(2)
	id, err := newID()
	if err != nil {
		return nil, err
	}
	c := &model.Contract{
		ID:              id,
		ClientID:        client.ID,
		TotalAmount:     in.TotalAmount,
		RemainingAmount: in.RemainingAmount,
		Status:          in.Status,
		ClientName:      client.Name,
		SalesContactID:  client.SalesContactID,
	}
	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	if c.Status == model.StatusSigned {
		s.signed(ctx, actor, c)
	}
	return c, nil
}

// List returns contracts visible to actor, narrowed by opts.
func (s *ContractServiceImpl) List(ctx context.Context, actor *model.User, opts model.ContractListOptions) ([]model.Contract, error) {
	if err := authorize(s.log, "contract.list", actor, model.RoleGestion, model.RoleSupport, model.RoleSales); err != nil {
		return nil, err
	}
	f := model.ContractFilter{Unsigned: opts.Unsigned, Unpaid: opts.Unpaid}
	if actor.Role == model.RoleSales {
		f.SalesContactID = &actor.ID
	}
	return s.contracts.List(ctx, f)
}

// Update patches a contract. Amount ordering is checked on the merged values,
// and signed is terminal.
func (s *ContractServiceImpl) Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.ContractPatch) (*model.Contract, error) {
	if err := authorize(s.log, "contract.update", actor, model.RoleSales, model.RoleGestion); err != nil {
		return nil, err
	}
	var before model.ContractStatus
	c, err := s.contracts.Update(ctx, id, func(cur model.Contract) (model.ContractPatch, error) {
		if err := ownsClient(actor, cur.SalesContactID); err != nil {
			return model.ContractPatch{}, err
		}
		before = cur.Status
		if p.Status != nil {
			if err := validate.Status(*p.Status); err != nil {
				return model.ContractPatch{}, err
			}
			if cur.Status == model.StatusSigned && *p.Status != model.StatusSigned {
				return model.ContractPatch{}, errs.Validationf("status: a signed contract cannot go back to %s", *p.Status)
			}
		}
		next := cur
		p.Apply(&next)
		if err := validate.Amounts(next.TotalAmount, next.RemainingAmount); err != nil {
			return model.ContractPatch{}, err
		}
		if p.TotalAmount != nil {
			p.TotalAmount = ptr(p.TotalAmount.Round(2))
		}
		if p.RemainingAmount != nil {
			p.RemainingAmount = ptr(p.RemainingAmount.Round(2))
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if before != model.StatusSigned && c.Status == model.StatusSigned {
		s.signed(ctx, actor, c)
	}
	return c, nil
}

func (s *ContractServiceImpl) signed(ctx context.Context, actor *model.User, c *model.Contract) {
	emit(ctx, s.sink, s.log, notify.Notification{
		Kind:    "contract.signed",
		Message: fmt.Sprintf("contract signed: id %s for client %s by %s", c.ID, c.ClientName, actor.Email),
		Fields: map[string]string{
			"contract_id": c.ID.String(),
			"client_id":   c.ClientID.String(),
			"amount":      c.TotalAmount.StringFixed(2),
		},
	})
}
