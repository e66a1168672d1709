package session

import (
	"testing"
	"time"

	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueResolve_RoundTrip(t *testing.T) {
	c := NewCodec([]byte("k"), 0)
	id := uuid.Must(uuid.NewV4())

	s, err := c.Issue(id, model.RoleSales)
	require.NoError(t, err)
	require.NotEmpty(t, s.Token)

	cl, err := c.Resolve(s.Token)
	require.NoError(t, err)
	require.Equal(t, id, cl.UserID)
	require.Equal(t, model.RoleSales, cl.Role)

	left := time.Until(cl.ExpiresAt)
	require.LessOrEqual(t, left, DefaultTTL)
	require.Greater(t, left, DefaultTTL-time.Minute)
}

func TestResolve_Expired(t *testing.T) {
	c := NewCodec([]byte("k"), time.Hour)
	s, err := c.Issue(uuid.Must(uuid.NewV4()), model.RoleSupport)
	require.NoError(t, err)

	c.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = c.Resolve(s.Token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestResolve_Invalid(t *testing.T) {
	c := NewCodec([]byte("k"), time.Hour)
	s, err := c.Issue(uuid.Must(uuid.NewV4()), model.RoleGestion)
	require.NoError(t, err)

	other := NewCodec([]byte("other-key"), time.Hour)
	_, err = other.Resolve(s.Token)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = c.Resolve("not-a-token")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = c.Resolve(s.Token + "x")
	require.ErrorIs(t, err, ErrInvalid)
}
