package getaccountbysessiontoken

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
)

type Input struct {
	Token account.SessionToken
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	sessionRepository account.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository account.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.sessionRepository.GetAccountByToken(ctx, input.Token)
	return Result{Account: a}, err
}
