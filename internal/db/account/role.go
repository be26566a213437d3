package account

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/db"
	"context"
)

type PgxRoleRepository struct {
	db db.DBTX
}

func NewPgxRoleRepository(dbtx db.DBTX) *PgxRoleRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxRoleRepository{db: dbtx}
}

// EnsureRole seeds the role and its permission links. Rerunning it is a
// no-op, conflicts are ignored by name.
func (r *PgxRoleRepository) EnsureRole(
	ctx context.Context,
	input account.EnsureRoleInput,
) (role account.Role, err error) {
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO role (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		string(input.Name),
	)
	if err != nil {
		return role, err
	}
	for _, permission := range input.Permissions {
		_, err = r.db.Exec(
			ctx,
			`INSERT INTO permission (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			string(permission),
		)
		if err != nil {
			return role, err
		}
		_, err = r.db.Exec(
			ctx,
			`INSERT INTO role_permission (role_id, permission_id)
			SELECT r.id, p.id FROM role r, permission p WHERE r.name = $1 AND p.name = $2
			ON CONFLICT DO NOTHING`,
			string(input.Name),
			string(permission),
		)
		if err != nil {
			return role, err
		}
	}
	return account.Role{Name: input.Name, Permissions: input.Permissions}, nil
}
