package tenant_test

import (
	"testing"

	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/tenant"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		role tenant.Role
		perm tenant.Permission
		want bool
	}{
		{"everyone reads assets", tenant.RoleEmployee, tenant.PermAssetRead, true},
		{"employee cannot create assets", tenant.RoleEmployee, tenant.PermAssetCreate, false},
		{"admin cannot create assets", tenant.RoleAdmin, tenant.PermAssetCreate, false},
		{"super admin creates assets", tenant.RoleSuperAdmin, tenant.PermAssetCreate, true},
		{"admin updates assets", tenant.RoleAdmin, tenant.PermAssetUpdate, true},
		{"only super admin deletes employees", tenant.RoleAdmin, tenant.PermEmployeeDelete, false},
		{"only super admin assigns", tenant.RoleAdmin, tenant.PermAssignmentCreate, false},
		{"only super admin transfers", tenant.RoleEmployee, tenant.PermAssignmentTransfer, false},
		{"employee files requests", tenant.RoleEmployee, tenant.PermRequestCreate, true},
		{"super admin does not file requests", tenant.RoleSuperAdmin, tenant.PermRequestCreate, false},
		{"only super admin resolves requests", tenant.RoleAdmin, tenant.PermRequestResolve, false},
		{"admin reads transactions", tenant.RoleAdmin, tenant.PermTransactionRead, true},
		{"employee cannot read transactions", tenant.RoleEmployee, tenant.PermTransactionRead, false},
		{"custom catalog role holds nothing", tenant.Role(7), tenant.PermAssetRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tenant.Allowed(tc.role, tc.perm))
		})
	}
}

func TestAuthorize(t *testing.T) {
	assert.NoError(t, tenant.Authorize(tenant.RoleSuperAdmin, tenant.PermAssetDelete))
	assert.ErrorIs(t, tenant.Authorize(tenant.RoleEmployee, tenant.PermAssetDelete), apperror.ErrForbidden)
	assert.ErrorIs(t, tenant.Authorize(tenant.Role(7), tenant.PermAssetRead), apperror.ErrForbidden)
}

func TestParseRole(t *testing.T) {
	for _, id := range []int64{1, 2, 3} {
		r, ok := tenant.ParseRole(id)
		assert.True(t, ok)
		assert.NotEmpty(t, r.String())
	}

	_, ok := tenant.ParseRole(0)
	assert.False(t, ok)
	_, ok = tenant.ParseRole(9)
	assert.False(t, ok)
}

func TestSeesSensitiveFields(t *testing.T) {
	assert.True(t, tenant.RoleSuperAdmin.SeesSensitiveFields())
	assert.True(t, tenant.RoleAdmin.SeesSensitiveFields())
	assert.False(t, tenant.RoleEmployee.SeesSensitiveFields())
	assert.False(t, tenant.Role(7).SeesSensitiveFields())
}
