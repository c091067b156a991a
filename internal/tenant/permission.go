package tenant

import "go-assettrack/internal/shared/apperror"

type Permission string

const (
	PermAssetRead   Permission = "asset:read"
	PermAssetCreate Permission = "asset:create"
	PermAssetUpdate Permission = "asset:update"
	PermAssetDelete Permission = "asset:delete"

	PermSoftwareRead   Permission = "software:read"
	PermSoftwareCreate Permission = "software:create"
	PermSoftwareUpdate Permission = "software:update"
	PermSoftwareDelete Permission = "software:delete"

	PermAssignmentRead     Permission = "assignment:read"
	PermAssignmentCreate   Permission = "assignment:create"
	PermAssignmentDelete   Permission = "assignment:delete"
	PermAssignmentTransfer Permission = "assignment:transfer"

	PermRequestRead    Permission = "assetrequest:read"
	PermRequestCreate  Permission = "assetrequest:create"
	PermRequestResolve Permission = "assetrequest:resolve"

	PermEmployeeRead   Permission = "employee:read"
	PermEmployeeCreate Permission = "employee:create"
	PermEmployeeUpdate Permission = "employee:update"
	PermEmployeeDelete Permission = "employee:delete"

	PermRoleRead   Permission = "role:read"
	PermRoleManage Permission = "role:manage"

	PermTransactionRead  Permission = "transaction:read"
	PermTransactionWrite Permission = "transaction:write"
)

// permissions is the static authorization table. Roles are checked against it
// directly; there is no dynamic policy store.
var permissions = map[Permission][]Role{
	PermAssetRead:   {RoleSuperAdmin, RoleAdmin, RoleEmployee},
	PermAssetCreate: {RoleSuperAdmin},
	PermAssetUpdate: {RoleSuperAdmin, RoleAdmin},
	PermAssetDelete: {RoleSuperAdmin},

	PermSoftwareRead:   {RoleSuperAdmin, RoleAdmin, RoleEmployee},
	PermSoftwareCreate: {RoleSuperAdmin},
	PermSoftwareUpdate: {RoleSuperAdmin, RoleAdmin},
	PermSoftwareDelete: {RoleSuperAdmin},

	PermAssignmentRead:     {RoleSuperAdmin, RoleAdmin, RoleEmployee},
	PermAssignmentCreate:   {RoleSuperAdmin},
	PermAssignmentDelete:   {RoleSuperAdmin},
	PermAssignmentTransfer: {RoleSuperAdmin},

	PermRequestRead:    {RoleSuperAdmin, RoleAdmin},
	PermRequestCreate:  {RoleAdmin, RoleEmployee},
	PermRequestResolve: {RoleSuperAdmin},

	PermEmployeeRead:   {RoleSuperAdmin, RoleAdmin, RoleEmployee},
	PermEmployeeCreate: {RoleSuperAdmin},
	PermEmployeeUpdate: {RoleSuperAdmin, RoleAdmin},
	PermEmployeeDelete: {RoleSuperAdmin},

	PermRoleRead:   {RoleSuperAdmin, RoleAdmin, RoleEmployee},
	PermRoleManage: {RoleSuperAdmin},

	PermTransactionRead:  {RoleSuperAdmin, RoleAdmin},
	PermTransactionWrite: {RoleSuperAdmin},
}

// Allowed reports whether role may perform perm.
func Allowed(role Role, perm Permission) bool {
	for _, r := range permissions[perm] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize returns ErrForbidden when the role lacks the permission.
// Denial is always all-or-nothing, never a partial result.
func Authorize(role Role, perm Permission) error {
	if !Allowed(role, perm) {
		return apperror.ErrForbidden
	}
	return nil
}
