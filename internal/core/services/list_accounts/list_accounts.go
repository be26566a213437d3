package listaccounts

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Page  uint
	Limit uint
}

type Result struct {
	Accounts []account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{log: log, accountRepository: accountRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Pages are numbered from 1 on the wire, page 0 is treated as the
	// first page as well.
	page := input.Page
	if page > 0 {
		page--
	}
	accounts, err := s.accountRepository.List(ctx, account.ListOptions{
		Offset: page * input.Limit,
		Limit:  input.Limit,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("page", input.Page))
		return result, err
	}
	return Result{Accounts: accounts}, nil
}
