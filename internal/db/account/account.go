package account

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/db"
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const accountColumns = `id, public_id, email, first_name, last_name, password_hash,
	email_verified, verification_token, created_at`

type PgxAccountRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxAccountRepository {
	if dbtx == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxAccountRepository{db: dbtx}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (public_id, email, first_name, last_name, password_hash,
			email_verified, verification_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+accountColumns,
		string(input.PublicID),
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		input.EmailVerified,
		encodeVerificationToken(input.VerificationToken),
		input.CreatedAt,
	)
	a, err = decodeAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return a, err
	}

	for _, addressInput := range input.Addresses {
		address, err := r.createAddress(ctx, a.ID, addressInput)
		if err != nil {
			return a, err
		}
		a.Addresses = append(a.Addresses, address)
	}
	for _, roleName := range input.Roles {
		if err := r.assignRole(ctx, a.ID, roleName); err != nil {
			return a, err
		}
	}
	a.Roles, err = r.loadRoles(ctx, a.ID)
	if err != nil {
		return a, err
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

func (r *PgxAccountRepository) GetByPublicID(
	ctx context.Context,
	publicID account.PublicID,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE public_id = $1`,
		string(publicID),
	)
	return r.decodeAccountWithRelations(ctx, row)
}

func (r *PgxAccountRepository) GetByEmail(
	ctx context.Context,
	email c.Email,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE email = $1`,
		string(email),
	)
	return r.decodeAccountWithRelations(ctx, row)
}

func (r *PgxAccountRepository) Update(
	ctx context.Context,
	input account.UpdateAccountInput,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account SET first_name = $2, last_name = $3
		WHERE public_id = $1
		RETURNING `+accountColumns,
		string(input.PublicID),
		input.FirstName,
		input.LastName,
	)
	return r.decodeAccountWithRelations(ctx, row)
}

func (r *PgxAccountRepository) Delete(ctx context.Context, publicID account.PublicID) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM account WHERE public_id = $1`,
		string(publicID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) List(
	ctx context.Context,
	options account.ListOptions,
) ([]account.Account, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+accountColumns+` FROM account ORDER BY id LIMIT $1 OFFSET $2`,
		options.Limit,
		options.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]account.Account, 0, options.Limit)
	accountIDs := make([]int64, 0, options.Limit)
	for rows.Next() {
		a, err := decodeAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
		accountIDs = append(accountIDs, int64(a.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return accounts, nil
	}

	addressesByAccount, err := r.loadAddressesForAccounts(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	rolesByAccount, err := r.loadRolesForAccounts(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	for ix := range accounts {
		accounts[ix].Addresses = addressesByAccount[accounts[ix].ID]
		accounts[ix].Roles = rolesByAccount[accounts[ix].ID]
	}
	return accounts, nil
}

func (r *PgxAccountRepository) SetPassword(
	ctx context.Context,
	id account.ID,
	passwordHash account.PasswordHash,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(passwordHash),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) Verify(
	ctx context.Context,
	token account.VerificationToken,
) (account.Account, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account SET email_verified = TRUE, verification_token = NULL
		WHERE verification_token = $1 AND NOT email_verified
		RETURNING `+accountColumns,
		string(token),
	)
	return r.decodeAccountWithRelations(ctx, row)
}

func (r *PgxAccountRepository) ListByAccount(
	ctx context.Context,
	publicID account.PublicID,
) ([]account.Address, error) {
	a, err := r.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return a.Addresses, nil
}

func (r *PgxAccountRepository) GetByAddressID(
	ctx context.Context,
	addressID account.AddressID,
) (address account.Address, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, address_id, type, city, country, postal_code, street_name
		FROM address WHERE address_id = $1`,
		string(addressID),
	)
	err = row.Scan(
		&address.ID,
		&address.AddressID,
		&address.Type,
		&address.City,
		&address.Country,
		&address.PostalCode,
		&address.StreetName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return address, account.ErrAddressDoesNotExist
	}
	return address, err
}

func (r *PgxAccountRepository) createAddress(
	ctx context.Context,
	accountID account.ID,
	input account.CreateAddressInput,
) (address account.Address, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO address (address_id, account_id, type, city, country, postal_code, street_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, address_id, type, city, country, postal_code, street_name`,
		string(input.AddressID),
		int64(accountID),
		input.Type,
		input.City,
		input.Country,
		input.PostalCode,
		input.StreetName,
	)
	err = row.Scan(
		&address.ID,
		&address.AddressID,
		&address.Type,
		&address.City,
		&address.Country,
		&address.PostalCode,
		&address.StreetName,
	)
	return address, err
}

func (r *PgxAccountRepository) assignRole(
	ctx context.Context,
	accountID account.ID,
	roleName account.RoleName,
) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO account_role (account_id, role_id)
		SELECT $1, id FROM role WHERE name = $2
		ON CONFLICT DO NOTHING`,
		int64(accountID),
		string(roleName),
	)
	return err
}

func (r *PgxAccountRepository) decodeAccountWithRelations(
	ctx context.Context,
	row pgx.Row,
) (a account.Account, err error) {
	a, err = decodeAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	a.Addresses, err = r.loadAddresses(ctx, a.ID)
	if err != nil {
		return a, err
	}
	a.Roles, err = r.loadRoles(ctx, a.ID)
	if err != nil {
		return a, err
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

func (r *PgxAccountRepository) loadAddresses(
	ctx context.Context,
	accountID account.ID,
) ([]account.Address, error) {
	byAccount, err := r.loadAddressesForAccounts(ctx, []int64{int64(accountID)})
	if err != nil {
		return nil, err
	}
	return byAccount[accountID], nil
}

func (r *PgxAccountRepository) loadAddressesForAccounts(
	ctx context.Context,
	accountIDs []int64,
) (map[account.ID][]account.Address, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT account_id, id, address_id, type, city, country, postal_code, street_name
		FROM address WHERE account_id = ANY($1) ORDER BY id`,
		accountIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byAccount := make(map[account.ID][]account.Address)
	for rows.Next() {
		var accountID int64
		var address account.Address
		err = rows.Scan(
			&accountID,
			&address.ID,
			&address.AddressID,
			&address.Type,
			&address.City,
			&address.Country,
			&address.PostalCode,
			&address.StreetName,
		)
		if err != nil {
			return nil, err
		}
		byAccount[account.ID(accountID)] = append(byAccount[account.ID(accountID)], address)
	}
	return byAccount, rows.Err()
}

func (r *PgxAccountRepository) loadRoles(
	ctx context.Context,
	accountID account.ID,
) ([]account.Role, error) {
	byAccount, err := r.loadRolesForAccounts(ctx, []int64{int64(accountID)})
	if err != nil {
		return nil, err
	}
	return byAccount[accountID], nil
}

func (r *PgxAccountRepository) loadRolesForAccounts(
	ctx context.Context,
	accountIDs []int64,
) (map[account.ID][]account.Role, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT ar.account_id, r.name, p.name
		FROM account_role ar
		JOIN role r ON r.id = ar.role_id
		LEFT JOIN role_permission rp ON rp.role_id = r.id
		LEFT JOIN permission p ON p.id = rp.permission_id
		WHERE ar.account_id = ANY($1)
		ORDER BY r.id, p.id`,
		accountIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byAccount := make(map[account.ID][]account.Role)
	for rows.Next() {
		var accountID int64
		var roleName string
		var permission sql.NullString
		if err := rows.Scan(&accountID, &roleName, &permission); err != nil {
			return nil, err
		}
		id := account.ID(accountID)
		roles := byAccount[id]
		if len(roles) == 0 || roles[len(roles)-1].Name != account.RoleName(roleName) {
			roles = append(roles, account.Role{Name: account.RoleName(roleName)})
		}
		if permission.Valid {
			last := &roles[len(roles)-1]
			last.Permissions = append(last.Permissions, account.Permission(permission.String))
		}
		byAccount[id] = roles
	}
	return byAccount, rows.Err()
}

func encodeVerificationToken(token c.Optional[account.VerificationToken]) sql.NullString {
	return sql.NullString{String: string(token.Value), Valid: token.IsPresent}
}

func decodeAccount(row pgx.Row) (a account.Account, err error) {
	var verificationToken sql.NullString
	err = row.Scan(
		&a.ID,
		&a.PublicID,
		&a.Email,
		&a.FirstName,
		&a.LastName,
		&a.PasswordHash,
		&a.EmailVerified,
		&verificationToken,
		&a.CreatedAt,
	)
	if err != nil {
		return a, err
	}
	a.VerificationToken = c.NewOptional(
		account.VerificationToken(verificationToken.String),
		verificationToken.Valid,
	)
	return a, nil
}
