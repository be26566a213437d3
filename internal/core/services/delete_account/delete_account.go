package deleteaccount

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

type Result struct{}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	eventPublisher    account.EventPublisher
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	eventPublisher account.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		eventPublisher:    eventPublisher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.accountRepository.Delete(ctx, input.PublicID)
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

	s.eventPublisher.PublishAccountDeleted(ctx, input.PublicID)
	s.log.Info(
		ctx,
		"Account has been deleted.",
		logging.Entry("publicId", input.PublicID),
	)
	return Result{}, nil
}
