package verifyemail

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token account.VerificationToken
}

type Result struct {
	Verified bool
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	tokenCodec        account.TokenCodec
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
	tokenCodec account.TokenCodec,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if tokenCodec == nil {
		panic(e.NewNilArgumentError("tokenCodec"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		tokenCodec:        tokenCodec,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if s.tokenCodec.HasExpired(account.SignedToken(input.Token)) {
		s.log.Info(ctx, "Verification token has expired or is malformed.")
		return Result{Verified: false}, nil
	}

	a, err := s.accountRepository.Verify(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Verification token does not match any account.")
		return Result{Verified: false}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Account email has been verified.",
		logging.Entry("accountId", a.ID),
		logging.Entry("publicId", a.PublicID),
	)
	return Result{Verified: true}, nil
}
