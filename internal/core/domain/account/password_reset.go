package account

import (
	"context"
	"time"
)

type ResetToken string

// PasswordResetToken is a persisted, single-use record binding a signed
// token to the account it may reset.
type PasswordResetToken struct {
	Token     ResetToken
	AccountID ID
	CreatedAt time.Time
}

type CreateResetTokenInput struct {
	Token     ResetToken
	AccountID ID
	CreatedAt time.Time
}

type ResetTokenRepository interface {
	Create(ctx context.Context, input CreateResetTokenInput) (PasswordResetToken, error)
	GetByToken(ctx context.Context, token ResetToken) (PasswordResetToken, error)
	Delete(ctx context.Context, token ResetToken) error
	// DeleteForAccount invalidates every outstanding token of the account.
	DeleteForAccount(ctx context.Context, accountID ID) error
}
