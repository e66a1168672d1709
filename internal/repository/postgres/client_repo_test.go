package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

const clientSelectSQL = "SELECT id, name, phone_number, email, company_name, sales_contact_id, created_at, last_update FROM clients"

func clientRow(rows *pgxmock.Rows, c model.Client) *pgxmock.Rows {
	return rows.AddRow(c.ID, c.Name, c.PhoneNumber, c.Email, c.CompanyName, c.SalesContactID, c.CreatedAt, c.UpdatedAt)
}

func TestClientRepo_Create(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	c := &model.Client{ID: newID(), Name: "Kevin", PhoneNumber: "0102", Email: "kevin@startup.io", CompanyName: "Startup", SalesContactID: newID()}
	const q = "INSERT INTO clients (id,name,phone_number,email,company_name,sales_contact_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, last_update"

	mock.ExpectQuery(sqlRe(q)).
		WithArgs(c.ID, c.Name, c.PhoneNumber, c.Email, c.CompanyName, c.SalesContactID).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "last_update"}).AddRow(ts, ts))
	require.NoError(t, r.Create(context.Background(), c))
	require.Equal(t, ts, c.UpdatedAt)

	mock.ExpectQuery(sqlRe(q)).
		WithArgs(c.ID, c.Name, c.PhoneNumber, c.Email, c.CompanyName, c.SalesContactID).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(context.Background(), c), errs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	id := newID()

	mock.ExpectQuery(sqlRe(clientSelectSQL + " WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(clientCols))
	_, err := r.GetByID(context.Background(), id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestClientRepo_List_Filter(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	ctx := context.Background()
	owner := newID()
	c := model.Client{ID: newID(), Name: "Kevin", SalesContactID: owner, CreatedAt: ts, UpdatedAt: ts}

	mock.ExpectQuery(sqlRe(clientSelectSQL + " ORDER BY created_at")).
		WillReturnRows(clientRow(pgxmock.NewRows(clientCols), c))
	all, err := r.List(ctx, model.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	mock.ExpectQuery(sqlRe(clientSelectSQL + " WHERE sales_contact_id = $1 ORDER BY created_at")).
		WithArgs(owner.String()).
		WillReturnRows(clientRow(pgxmock.NewRows(clientCols), c))
	mine, err := r.List(ctx, model.ClientFilter{SalesContactID: &owner})
	require.NoError(t, err)
	require.Equal(t, c, mine[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_Update(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	cur := model.Client{ID: newID(), Name: "Kevin", PhoneNumber: "0102", Email: "kevin@startup.io", CompanyName: "Startup", SalesContactID: newID(), CreatedAt: ts, UpdatedAt: ts}
	later := ts.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlRe(clientSelectSQL + " WHERE id = $1 FOR UPDATE")).
		WithArgs(cur.ID.String()).
		WillReturnRows(clientRow(pgxmock.NewRows(clientCols), cur))
	mock.ExpectQuery(sqlRe("UPDATE clients SET company_name = $1, phone_number = $2, last_update = now() WHERE id = $3 RETURNING last_update")).
		WithArgs("Startup SAS", "0999", cur.ID.String()).
		WillReturnRows(pgxmock.NewRows([]string{"last_update"}).AddRow(later))
	mock.ExpectCommit()

	got, err := r.Update(context.Background(), cur.ID, func(model.Client) (model.ClientPatch, error) {
		company, phone := "Startup SAS", "0999"
		return model.ClientPatch{CompanyName: &company, PhoneNumber: &phone}, nil
	})
	require.NoError(t, err)
	require.Equal(t, "Startup SAS", got.CompanyName)
	require.Equal(t, "0999", got.PhoneNumber)
	require.Equal(t, cur.SalesContactID, got.SalesContactID)
	require.Equal(t, later, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_Update_EmptyPatchSkipsWrite(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	cur := model.Client{ID: newID(), CreatedAt: ts, UpdatedAt: ts}

	mock.ExpectBegin()
	mock.ExpectQuery(sqlRe(clientSelectSQL + " WHERE id = $1 FOR UPDATE")).
		WithArgs(cur.ID.String()).
		WillReturnRows(clientRow(pgxmock.NewRows(clientCols), cur))
	mock.ExpectCommit()

	got, err := r.Update(context.Background(), cur.ID, func(model.Client) (model.ClientPatch, error) {
		return model.ClientPatch{}, nil
	})
	require.NoError(t, err)
	require.Equal(t, cur, *got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepo_Update_MissingRow(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewClientRepo(db)
	id := newID()

	mock.ExpectBegin()
	mock.ExpectQuery(sqlRe(clientSelectSQL + " WHERE id = $1 FOR UPDATE")).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows(clientCols))
	mock.ExpectRollback()

	called := false
	_, err := r.Update(context.Background(), id, func(model.Client) (model.ClientPatch, error) {
		called = true
		return model.ClientPatch{}, nil
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}
