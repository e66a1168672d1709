package repository

import (
	"context"

	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ClientRepository stores clients.
type ClientRepository interface {
	// Create inserts a client and fills its timestamps.
	Create(ctx context.Context, c *model.Client) error
	// GetByID loads a client or returns errs.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	// List returns clients matching f.
	List(ctx context.Context, f model.ClientFilter) ([]model.Client, error)
	// Update applies the patch returned by mutate and refreshes last_update.
	Update(ctx context.Context, id uuid.UUID, mutate func(cur model.Client) (model.ClientPatch, error)) (*model.Client, error)
}

// ContractRepository stores contracts. Reads carry the owning client's name and sales contact.
type ContractRepository interface {
	Create(ctx context.Context, c *model.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	List(ctx context.Context, f model.ContractFilter) ([]model.Contract, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(cur model.Contract) (model.ContractPatch, error)) (*model.Contract, error)
}

// EventRepository stores events. Reads carry the client name and sales contact
// reached through the contract.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(cur model.Event) (model.EventPatch, error)) (*model.Event, error)
	// SetSupport assigns the support contact of an event.
	SetSupport(ctx context.Context, id, supportID uuid.UUID) error
}
