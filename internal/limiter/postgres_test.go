package limiter

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var (
	selectRe  = regexp.QuoteMeta("SELECT blocked_until FROM login_attempts WHERE email=$1 AND ip_hash=$2")
	successRe = `INSERT INTO login_attempts (.+) VALUES \(\$1,\$2,0,'epoch',now\(\)\)`
	failureRe = `INSERT INTO login_attempts (.+) RETURNING fail_count`
	blockRe   = regexp.QuoteMeta("UPDATE login_attempts SET blocked_until=$3 WHERE email=$1 AND ip_hash=$2")
)

func newPG(t *testing.T, opts Options) (*PG, pgxmock.PgxPoolIface, time.Time) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	l := NewPG(mock, opts)
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, mock, now
}

func TestPGAllow(t *testing.T) {
	l, mock, now := newPG(t, Options{})
	ctx := context.Background()
	h := HashIP("10.0.0.1:5555")

	mock.ExpectQuery(selectRe).WithArgs("a@epic.io", h).WillReturnError(pgx.ErrNoRows)
	ok, dur, err := l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, dur)

	mock.ExpectQuery(selectRe).WithArgs("a@epic.io", h).
		WillReturnRows(pgxmock.NewRows([]string{"blocked_until"}).AddRow(now.Add(10 * time.Minute)))
	ok, dur, err = l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 10*time.Minute, dur)

	mock.ExpectQuery(selectRe).WithArgs("a@epic.io", h).
		WillReturnRows(pgxmock.NewRows([]string{"blocked_until"}).AddRow(now.Add(-time.Minute)))
	ok, _, err = l.Allow(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectQuery(selectRe).WithArgs("a@epic.io", h).WillReturnError(errors.New("db boom"))
	ok, _, err = l.Allow(ctx, "a@epic.io", h)
	require.Error(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGSuccess(t *testing.T) {
	l, mock, _ := newPG(t, Options{})
	h := HashIP("10.0.0.1")

	mock.ExpectExec(successRe).WithArgs("a@epic.io", h).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, l.Success(context.Background(), "a@epic.io", h))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGFailure_CountsThenBlocks(t *testing.T) {
	opts := Options{Window: 5 * time.Minute, MaxFails: 3, BlockFor: 10 * time.Minute}
	l, mock, now := newPG(t, opts)
	ctx := context.Background()
	h := HashIP("10.0.0.1")

	mock.ExpectQuery(failureRe).WithArgs("a@epic.io", h, opts.Window).
		WillReturnRows(pgxmock.NewRows([]string{"fail_count"}).AddRow(2))
	blocked, dur, err := l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.False(t, blocked)
	require.Zero(t, dur)

	mock.ExpectQuery(failureRe).WithArgs("a@epic.io", h, opts.Window).
		WillReturnRows(pgxmock.NewRows([]string{"fail_count"}).AddRow(3))
	mock.ExpectExec(blockRe).WithArgs("a@epic.io", h, now.Add(opts.BlockFor)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	blocked, dur, err = l.Failure(ctx, "a@epic.io", h)
	require.NoError(t, err)
	require.True(t, blocked)
	require.Equal(t, 10*time.Minute, dur)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHashIP_IgnoresPort(t *testing.T) {
	require.Equal(t, HashIP("1.2.3.4:123"), HashIP("1.2.3.4:456"))
	require.Equal(t, HashIP("1.2.3.4"), HashIP("1.2.3.4:456"))
	require.NotEqual(t, HashIP("1.2.3.4"), HashIP("5.6.7.8"))
	require.Len(t, HashIP(""), 32)
}
