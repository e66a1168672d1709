package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

const userSelectSQL = "SELECT u.id, u.name, u.email, u.password_hash, u.department, r.name AS role, u.is_superuser, u.created_at FROM users u JOIN roles r ON r.id = u.role_id"

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &model.User{
		ID:         newID(),
		Name:       "Ann",
		Email:      "ann@epic.io",
		PwdHash:    "$argon2id$...",
		Department: "sales",
		Role:       model.RoleSales,
	}
	const q = "INSERT INTO users (id,name,email,password_hash,department,role_id,is_superuser) " +
		"VALUES ($1,$2,$3,$4,$5,(SELECT id FROM roles WHERE name = $6),$7) RETURNING created_at"

	mock.ExpectQuery(sqlRe(q)).
		WithArgs(u.ID, u.Name, u.Email, u.PwdHash, u.Department, model.RoleSales, false).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(ts))
	require.NoError(t, r.Create(ctx, u))
	require.Equal(t, ts, u.CreatedAt)

	mock.ExpectQuery(sqlRe(q)).
		WithArgs(u.ID, u.Name, u.Email, u.PwdHash, u.Department, model.RoleSales, false).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, u), errs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	want := model.User{ID: newID(), Name: "Bob", Email: "bob@epic.io", PwdHash: "h", Department: "support", Role: model.RoleSupport, CreatedAt: ts}

	mock.ExpectQuery(sqlRe(userSelectSQL + " WHERE u.id = $1")).
		WithArgs(want.ID.String()).
		WillReturnRows(userRow(pgxmock.NewRows(userCols), want))
	got, err := r.GetByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want, *got)

	mock.ExpectQuery(sqlRe(userSelectSQL + " WHERE u.id = $1")).
		WithArgs(want.ID.String()).
		WillReturnRows(pgxmock.NewRows(userCols))
	_, err = r.GetByID(ctx, want.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_and_List(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	a := model.User{ID: newID(), Email: "a@epic.io", Role: model.RoleGestion, IsSuperuser: true, CreatedAt: ts}
	b := model.User{ID: newID(), Email: "b@epic.io", Role: model.RoleSales, CreatedAt: ts}

	mock.ExpectQuery(sqlRe(userSelectSQL + " WHERE u.email = $1")).
		WithArgs("a@epic.io").
		WillReturnRows(userRow(pgxmock.NewRows(userCols), a))
	got, err := r.GetByEmail(ctx, "a@epic.io")
	require.NoError(t, err)
	require.True(t, got.IsSuperuser)

	rows := pgxmock.NewRows(userCols)
	userRow(rows, a)
	userRow(rows, b)
	mock.ExpectQuery(sqlRe(userSelectSQL + " ORDER BY u.created_at, u.email")).WillReturnRows(rows)
	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, model.RoleSales, all[1].Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Update_WritesOnlyPatchedColumns(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	cur := model.User{ID: newID(), Name: "Old", Email: "old@epic.io", Role: model.RoleSales, CreatedAt: ts}

	mock.ExpectBegin()
	mock.ExpectQuery(sqlRe(userSelectSQL + " WHERE u.id = $1 FOR UPDATE OF u")).
		WithArgs(cur.ID.String()).
		WillReturnRows(userRow(pgxmock.NewRows(userCols), cur))
	mock.ExpectExec(sqlRe("UPDATE users SET email = $1, role_id = (SELECT id FROM roles WHERE name = $2) WHERE id = $3")).
		WithArgs("new@epic.io", model.RoleSupport, cur.ID.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	got, err := r.Update(ctx, cur.ID, func(u model.User) (model.UserPatch, error) {
		require.Equal(t, "old@epic.io", u.Email)
		email, role := "new@epic.io", model.RoleSupport
		return model.UserPatch{Email: &email, Role: &role}, nil
	})
	require.NoError(t, err)
	require.Equal(t, "new@epic.io", got.Email)
	require.Equal(t, model.RoleSupport, got.Role)
	require.Equal(t, "Old", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Update_MutateErrorRollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	cur := model.User{ID: newID(), Role: model.RoleSales, CreatedAt: ts}
	boom := errors.New("rejected")

	mock.ExpectBegin()
	mock.ExpectQuery(sqlRe(userSelectSQL + " WHERE u.id = $1 FOR UPDATE OF u")).
		WithArgs(cur.ID.String()).
		WillReturnRows(userRow(pgxmock.NewRows(userCols), cur))
	mock.ExpectRollback()

	_, err := r.Update(context.Background(), cur.ID, func(model.User) (model.UserPatch, error) {
		return model.UserPatch{}, boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := newID()
	const q = "DELETE FROM users WHERE id = $1"

	mock.ExpectExec(sqlRe(q)).WithArgs(id.String()).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(ctx, id))

	mock.ExpectExec(sqlRe(q)).WithArgs(id.String()).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(ctx, id), errs.ErrNotFound)

	mock.ExpectExec(sqlRe(q)).WithArgs(id.String()).WillReturnError(&pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, r.Delete(ctx, id), errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}
