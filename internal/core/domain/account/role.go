package account

type RoleName string

type Permission string

const (
	RoleUser  RoleName = "USER"
	RoleAdmin RoleName = "ADMIN"

	PermissionRead   Permission = "READ"
	PermissionWrite  Permission = "WRITE"
	PermissionDelete Permission = "DELETE"
)

type Role struct {
	Name        RoleName
	Permissions []Permission
}

// DefaultRoles is the static role seed, ensured idempotently at process
// start and treated as read-only afterwards.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleUser, Permissions: []Permission{PermissionRead, PermissionWrite}},
		{Name: RoleAdmin, Permissions: []Permission{PermissionRead, PermissionWrite, PermissionDelete}},
	}
}
