package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

func userSelect() squirrel.SelectBuilder {
	return psql.Select(
		"u.id", "u.name", "u.email", "u.password_hash", "u.department",
		"r.name AS role", "u.is_superuser", "u.created_at",
	).From("users u").Join("roles r ON r.id = u.role_id")
}

func roleID(r model.Role) squirrel.Sqlizer {
	return squirrel.Expr("(SELECT id FROM roles WHERE name = ?)", r)
}

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	sql, args, err := psql.Insert("users").
		Columns("id", "name", "email", "password_hash", "department", "role_id", "is_superuser").
		Values(u.ID, u.Name, u.Email, u.PwdHash, u.Department, roleID(u.Role), u.IsSuperuser).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return err
	}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&u.CreatedAt); err != nil {
		return mapPgError(err)
	}
	return nil
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := getOne(ctx, r.db.Pool, &u, userSelect().Where(squirrel.Eq{"u.id": id})); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := getOne(ctx, r.db.Pool, &u, userSelect().Where(squirrel.Eq{"u.email": email})); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user, oldest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := getAll(ctx, r.db.Pool, &out, userSelect().OrderBy("u.created_at", "u.email")); err != nil {
		return nil, err
	}
	return out, nil
}

// Update locks the user row, lets mutate decide the patch and writes it.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, mutate func(model.User) (model.UserPatch, error)) (*model.User, error) {
	var cur model.User
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := getOne(ctx, tx, &cur, userSelect().Where(squirrel.Eq{"u.id": id}).Suffix("FOR UPDATE OF u")); err != nil {
			return err
		}
		p, err := mutate(cur)
		if err != nil {
			return err
		}
		if p.Empty() {
			return nil
		}
		if _, err := exec(ctx, tx, psql.Update("users").SetMap(userColumns(p)).Where(squirrel.Eq{"id": id})); err != nil {
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

// Delete removes a user. Events it supports are unassigned by the schema;
// owned clients block the delete.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := exec(ctx, r.db.Pool, psql.Delete("users").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func userColumns(p model.UserPatch) map[string]any {
	cols := make(map[string]any, 5)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.PwdHash != nil {
		cols["password_hash"] = *p.PwdHash
	}
	if p.Department != nil {
		cols["department"] = *p.Department
	}
	if p.Role != nil {
		cols["role_id"] = roleID(*p.Role)
	}
	return cols
}
