package guard

import (
	"testing"

	"github.com/and161185/epic-events/internal/errs"
	"github.com/and161185/epic-events/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		actor   *model.User
		allowed []model.Role
		wantErr error
	}{
		{"no actor", nil, []model.Role{model.RoleSales}, errs.ErrUnauthenticated},
		{"role allowed", &model.User{Role: model.RoleSales}, []model.Role{model.RoleSales, model.RoleGestion}, nil},
		{"role denied", &model.User{Role: model.RoleSupport}, []model.Role{model.RoleGestion}, errs.ErrForbidden},
		{"superuser bypass", &model.User{Role: model.RoleSupport, IsSuperuser: true}, []model.Role{model.RoleGestion}, nil},
		{"empty allow list", &model.User{Role: model.RoleGestion}, nil, errs.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.actor, tt.allowed...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_DeniedNeverInvokes(t *testing.T) {
	called := false
	_, err := Run(&model.User{Role: model.RoleSales}, []model.Role{model.RoleGestion}, func() (int, error) {
		called = true
		return 1, nil
	})
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.False(t, called)

	n, err := Run(&model.User{Role: model.RoleGestion}, []model.Role{model.RoleGestion}, func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, n)
}
