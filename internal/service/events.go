package service

import (
	"context"
	"errors"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/and161185/epic-events/internal/repository"
	"github.com/and161185/epic-events/internal/validate"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// EventService manages events organised for signed contracts.
type EventService interface {
	Create(ctx context.Context, actor *model.User, in model.NewEvent) (*model.Event, error)
	List(ctx context.Context, actor *model.User, opts model.EventListOptions) ([]model.Event, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.EventPatch) (*model.Event, error)
	AssignSupport(ctx context.Context, actor *model.User, eventID, supportID uuid.UUID) (*model.Event, error)
}

type EventServiceImpl struct {
	events    repository.EventRepository
	contracts repository.ContractRepository
	users     repository.UserRepository
	log       *zap.Logger
}

// NewEventService constructs EventService.
func NewEventService(events repository.EventRepository, contracts repository.ContractRepository, users repository.UserRepository, log *zap.Logger) *EventServiceImpl {
	return &EventServiceImpl{events: events, contracts: contracts, users: users, log: log}
}

// Create stores an event. Checks run in a fixed order: role, contract
// existence, contract signed, client ownership, then field rules.
func (s *EventServiceImpl) Create(ctx context.Context, actor *model.User, in model.NewEvent) (*model.Event, error) {
	if err := authorize(s.log, "event.create", actor, model.RoleSales); err != nil {
		return nil, err
	}
	c, err := s.contracts.GetByID(ctx, in.ContractID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.NotFoundf("contract %s", in.ContractID)
	}
	if err != nil {
		return nil, err
	}
	if c.Status != model.StatusSigned {
		return nil, errs.Validationf("contract must be signed")
	}
	if c.SalesContactID != actor.ID {
		return nil, errs.Forbiddenf("contract client is owned by another sales contact")
	}
	if err := validate.Schedule(in.StartDate, in.EndDate, in.Attendees, in.Location); err != nil {
		return nil, err
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}
	e := &model.Event{
		ID:             id,
		ContractID:     c.ID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Location:       in.Location,
		Attendees:      in.Attendees,
		Notes:          in.Notes,
		ClientName:     c.ClientName,
		SalesContactID: c.SalesContactID,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns events visible to actor: gestion all, support its assigned
// events, sales the events of its clients.
func (s *EventServiceImpl) List(ctx context.Context, actor *model.User, opts model.EventListOptions) ([]model.Event, error) {
	if err := authorize(s.log, "event.list", actor, model.RoleSales, model.RoleSupport, model.RoleGestion); err != nil {
		return nil, err
	}
	f := model.EventFilter{NoSupport: opts.NoSupport}
	switch actor.Role {
	case model.RoleSupport:
		f.SupportContactID = &actor.ID
	case model.RoleSales:
		f.SalesContactID = &actor.ID
	}
	if opts.Mine {
		f.SupportContactID = &actor.ID
	}
	return s.events.List(ctx, f)
}

// Update patches an event. Support actors may only patch events assigned to them.
func (s *EventServiceImpl) Update(ctx context.Context, actor *model.User, id uuid.UUID, p model.EventPatch) (*model.Event, error) {
	if err := authorize(s.log, "event.update", actor, model.RoleSupport, model.RoleGestion); err != nil {
		return nil, err
	}
	return s.events.Update(ctx, id, func(cur model.Event) (model.EventPatch, error) {
		if actor.Role == model.RoleSupport && (cur.SupportContactID == nil || *cur.SupportContactID != actor.ID) {
			return model.EventPatch{}, errs.Forbiddenf("event is not assigned to you")
		}
		next := cur
		p.Apply(&next)
		if err := validate.Schedule(next.StartDate, next.EndDate, next.Attendees, next.Location); err != nil {
			return model.EventPatch{}, err
		}
		return p, nil
	})
}

// AssignSupport sets the support contact of an event to a support collaborator.
func (s *EventServiceImpl) AssignSupport(ctx context.Context, actor *model.User, eventID, supportID uuid.UUID) (*model.Event, error) {
	if err := authorize(s.log, "event.assign_support", actor, model.RoleGestion); err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.NotFoundf("event %s", eventID)
	}
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, supportID)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.NotFoundf("user %s", supportID)
	}
	if err != nil {
		return nil, err
	}
	if u.Role != model.RoleSupport {
		return nil, errs.Validationf("user %s is not in the support team", u.Email)
	}
	if err := s.events.SetSupport(ctx, e.ID, u.ID); err != nil {
		return nil, err
	}
	e.SupportContactID = &u.ID
	s.log.Info("support assigned", zap.Stringer("event", e.ID), zap.Stringer("support", u.ID))
	return e, nil
}
