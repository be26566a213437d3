package account

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(dbtx db.DBTX) *PgxSessionRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: dbtx}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input account.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, account_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.AccountID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetAccountByToken(
	ctx context.Context,
	token account.SessionToken,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT a.id, a.public_id, a.email, a.first_name, a.last_name, a.password_hash,
			a.email_verified, a.verification_token, a.created_at
		FROM account a
		JOIN session s ON s.account_id = a.id
		WHERE s.token = $1`,
		string(token),
	)
	accounts := NewPgxRepository(r.db)
	return accounts.decodeAccountWithRelations(ctx, row)
}

func (r *PgxSessionRepository) Delete(
	ctx context.Context,
	token account.SessionToken,
) (accountID account.ID, err error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM session WHERE token = $1 RETURNING account_id`,
		string(token),
	)
	var rawAccountID int64
	err = row.Scan(&rawAccountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return accountID, account.ErrSessionDoesNotExist
	}
	if err != nil {
		return accountID, err
	}
	return account.ID(rawAccountID), nil
}
