package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ContractRepo implements ContractRepository using PostgreSQL.
type ContractRepo struct{ db *DB }

// NewContractRepo constructs a contract repository.
func NewContractRepo(db *DB) *ContractRepo { return &ContractRepo{db: db} }

func contractSelect() squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.client_id", "c.total_amount", "c.remaining_amount", "c.status", "c.created_at",
		"cl.name AS client_name", "cl.sales_contact_id",
	).From("contracts c").Join("clients cl ON cl.id = c.client_id")
}

// Create inserts a contract row. A missing client yields errs.ErrConflict.
func (r *ContractRepo) Create(ctx context.Context, c *model.Contract) error {
	sql, args, err := psql.Insert("contracts").
		Columns("id", "client_id", "total_amount", "remaining_amount", "status").
		Values(c.ID, c.ClientID, c.TotalAmount, c.RemainingAmount, c.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&c.CreatedAt); err != nil {
		return mapPgError(err)
	}
	return nil
}

// GetByID selects a contract by ID.
func (r *ContractRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var c model.Contract
	if err := getOne(ctx, r.db.Pool, &c, contractSelect().Where(squirrel.Eq{"c.id": id})); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns contracts matching f.
func (r *ContractRepo) List(ctx context.Context, f model.ContractFilter) ([]model.Contract, error) {
	q := contractSelect().OrderBy("c.created_at")
	if f.SalesContactID != nil {
		q = q.Where(squirrel.Eq{"cl.sales_contact_id": *f.SalesContactID})
	}
	if f.Unsigned {
		q = q.Where(squirrel.NotEq{"c.status": model.StatusSigned})
	}
	if f.Unpaid {
		q = q.Where(squirrel.Gt{"c.remaining_amount": 0})
	}
	var out []model.Contract
	if err := getAll(ctx, r.db.Pool, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

// Update locks the contract row, lets mutate decide the patch and writes it.
func (r *ContractRepo) Update(ctx context.Context, id uuid.UUID, mutate func(model.Contract) (model.ContractPatch, error)) (*model.Contract, error) {
	var cur model.Contract
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := getOne(ctx, tx, &cur, contractSelect().Where(squirrel.Eq{"c.id": id}).Suffix("FOR UPDATE OF c")); err != nil {
			return err
		}
		p, err := mutate(cur)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if _, err := exec(ctx, tx, psql.Update("contracts").SetMap(contractColumns(p)).Where(squirrel.Eq{"id": id})); err != nil {
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

func contractColumns(p model.ContractPatch) map[string]any {
	cols := make(map[string]any, 3)
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.TotalAmount != nil {
		cols["total_amount"] = *p.TotalAmount
	}
	if p.RemainingAmount != nil {
		cols["remaining_amount"] = *p.RemainingAmount
	}
	return cols
}
