package bootstrap

import (
	"accounthub/internal/core/domain/account"
	"context"
)

// EnsureDefaultRoles seeds the static role set. It runs on every process
// start and must stay idempotent.
func EnsureDefaultRoles(ctx context.Context, roleRepository account.RoleRepository) error {
	for _, role := range account.DefaultRoles() {
		_, err := roleRepository.EnsureRole(ctx, account.EnsureRoleInput{
			Name:        role.Name,
			Permissions: role.Permissions,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
