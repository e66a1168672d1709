package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ClientRepo implements ClientRepository using PostgreSQL.
type ClientRepo struct{ db *DB }

// NewClientRepo constructs a client repository.
func NewClientRepo(db *DB) *ClientRepo { return &ClientRepo{db: db} }

func clientSelect() squirrel.SelectBuilder {
	return psql.Select(
		"id", "name", "phone_number", "email", "company_name",
		"sales_contact_id", "created_at", "last_update",
	).From("clients")
}

// Create inserts a client row.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	sql, args, err := psql.Insert("clients").
		Columns("id", "name", "phone_number", "email", "company_name", "sales_contact_id").
		Values(c.ID, c.Name, c.PhoneNumber, c.Email, c.CompanyName, c.SalesContactID).
		Suffix("RETURNING created_at, last_update").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return mapPgError(err)
	}
	return nil
}

// GetByID selects a client by ID.
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	if err := getOne(ctx, r.db.Pool, &c, clientSelect().Where(squirrel.Eq{"id": id})); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns clients, optionally restricted to one sales contact.
func (r *ClientRepo) List(ctx context.Context, f model.ClientFilter) ([]model.Client, error) {
	q := clientSelect().OrderBy("created_at")
	if f.SalesContactID != nil {
		q = q.Where(squirrel.Eq{"sales_contact_id": *f.SalesContactID})
	}
	var out []model.Client
	if err := getAll(ctx, r.db.Pool, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Update locks the client row, lets mutate decide the patch and writes it.
func (r *ClientRepo) Update(ctx context.Context, id uuid.UUID, mutate func(model.Client) (model.ClientPatch, error)) (*model.Client, error) {
	var cur model.Client
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := getOne(ctx, tx, &cur, clientSelect().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")); err != nil {
			return err
		}
		p, err := mutate(cur)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		sql, args, err := psql.Update("clients").
			SetMap(clientColumns(p)).
			Set("last_update", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}).
			Suffix("RETURNING last_update").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&cur.UpdatedAt); err != nil {
			return mapPgError(err)
		}
		p.Apply(&cur)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cur, nil
}

func clientColumns(p model.ClientPatch) map[string]any {
	cols := make(map[string]any, 4)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.PhoneNumber != nil {
		cols["phone_number"] = *p.PhoneNumber
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.CompanyName != nil {
		cols["company_name"] = *p.CompanyName
	}
	return cols
}
