package getaccount

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	PublicID account.PublicID
}

type Result struct {
	Account account.Account
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
	a, err := s.accountRepository.GetByPublicID(ctx, input.PublicID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("publicId", input.PublicID))
		return result, err
	}
	return Result{Account: a}, nil
}
