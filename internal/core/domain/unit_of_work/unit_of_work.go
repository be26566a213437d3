package uow

import (
	"accounthub/internal/core/domain/account"
	"context"
)

// Context is a transactional scope. Every repository obtained from it
// runs on the same underlying transaction.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() account.Repository
	ResetTokens() account.ResetTokenRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
