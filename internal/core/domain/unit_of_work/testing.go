package uow

import (
	"accounthub/internal/core/domain/account"
	"context"
)

type FakeUnitOfWorkContext struct {
	AccountRepository    *account.FakeRepository
	ResetTokenRepository *account.FakeResetTokenRepository
	WasRollbackCalled    bool
	WasCommitCalled      bool
}

func NewFakeUnitOfWorkContext(
	accountRepository *account.FakeRepository,
	resetTokenRepository *account.FakeResetTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		AccountRepository:    accountRepository,
		ResetTokenRepository: resetTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Accounts() account.Repository {
	return c.AccountRepository
}

func (c *FakeUnitOfWorkContext) ResetTokens() account.ResetTokenRepository {
	return c.ResetTokenRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			account.NewFakeRepository(),
			account.NewFakeResetTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
