package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

func eventSelect() squirrel.SelectBuilder {
	return psql.Select(
		"e.id", "e.contract_id", "e.start_date", "e.end_date", "e.location", "e.attendees",
		"e.notes", "e.support_contact_id", "cl.name AS client_name", "cl.sales_contact_id",
	).From("events e").
		Join("contracts c ON c.id = e.contract_id").
		Join("clients cl ON cl.id = c.client_id")
}

// Create inserts an event row.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	_, err := exec(ctx, r.db.Pool, psql.Insert("events").
		Columns("id", "contract_id", "start_date", "end_date", "location", "attendees", "notes", "support_contact_id").
		Values(e.ID, e.ContractID, e.StartDate, e.EndDate, e.Location, e.Attendees, e.Notes, e.SupportContactID))
	return err
}

// GetByID selects an event by ID.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var e model.Event
	if err := getOne(ctx, r.db.Pool, &e, eventSelect().Where(squirrel.Eq{"e.id": id})); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns events matching f, soonest first.
func (r *EventRepo) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	q := eventSelect().OrderBy("e.start_date")
	if f.SalesContactID != nil {
		q = q.Where(squirrel.Eq{"cl.sales_contact_id": *f.SalesContactID})
	}
	if f.SupportContactID != nil {
		q = q.Where(squirrel.Eq{"e.support_contact_id": *f.SupportContactID})
	}
	if f.NoSupport {
		q = q.Where(squirrel.Eq{"e.support_contact_id": nil})
	}
	var out []model.Event
	if err := getAll(ctx, r.db.Pool, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Update locks the event row, lets mutate decide the patch and writes it.
func (r *EventRepo) Update(ctx context.Context, id uuid.UUID, mutate func(model.Event) (model.EventPatch, error)) (*model.Event, error) {
	var cur model.Event
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := getOne(ctx, tx, &cur, eventSelect().Where(squirrel.Eq{"e.id": id}).Suffix("FOR UPDATE OF e")); err != nil {
			return err
		}
		p, err := mutate(cur)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if _, err := exec(ctx, tx, psql.Update("events").SetMap(eventColumns(p)).Where(squirrel.Eq{"id": id})); err != nil {
			return err
		}
		p.Apply(&cur)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cur, nil
}

// SetSupport assigns supportID to the event.
func (r *EventRepo) SetSupport(ctx context.Context, id, supportID uuid.UUID) error {
	n, err := exec(ctx, r.db.Pool, psql.Update("events").
		Set("support_contact_id", supportID).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func eventColumns(p model.EventPatch) map[string]any {
	cols := make(map[string]any, 5)
	if p.StartDate != nil {
		cols["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		cols["end_date"] = *p.EndDate
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.Attendees != nil {
		cols["attendees"] = *p.Attendees
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	return cols
}
