package account

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxResetTokenRepository struct {
	db db.DBTX
}

func NewPgxResetTokenRepository(dbtx db.DBTX) *PgxResetTokenRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxResetTokenRepository{db: dbtx}
}

func (r *PgxResetTokenRepository) Create(
	ctx context.Context,
	input account.CreateResetTokenInput,
) (t account.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (token, account_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING token, account_id, created_at`,
		string(input.Token),
		int64(input.AccountID),
		input.CreatedAt,
	)
	err = row.Scan(&t.Token, &t.AccountID, &t.CreatedAt)
	return t, err
}

func (r *PgxResetTokenRepository) GetByToken(
	ctx context.Context,
	token account.ResetToken,
) (t account.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT token, account_id, created_at FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	err = row.Scan(&t.Token, &t.AccountID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, account.ErrResetTokenDoesNotExist
	}
	return t, err
}

func (r *PgxResetTokenRepository) Delete(ctx context.Context, token account.ResetToken) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrResetTokenDoesNotExist
	}
	return nil
}

func (r *PgxResetTokenRepository) DeleteForAccount(
	ctx context.Context,
	accountID account.ID,
) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE account_id = $1`,
		int64(accountID),
	)
	return err
}
