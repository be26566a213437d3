package requestpasswordreset

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	uow "accounthub/internal/core/domain/unit_of_work"
	"accounthub/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

type Result struct {
	Account account.Account
	Token   account.ResetToken
	Sent    bool
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	accountRepository account.Repository
	tokenCodec        account.TokenCodec
	resetTTL          time.Duration
	now               func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	accountRepository account.Repository,
	tokenCodec account.TokenCodec,
	resetTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if tokenCodec == nil {
		panic(e.NewNilArgumentError("tokenCodec"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		accountRepository: accountRepository,
		tokenCodec:        tokenCodec,
		resetTTL:          resetTTL,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	token := account.ResetToken(s.tokenCodec.Issue(a.PublicID, s.resetTTL))

	uowCtx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uowCtx.Rollback(ctx)

	// A new request supersedes every token issued before it.
	if err := uowCtx.ResetTokens().DeleteForAccount(ctx, a.ID); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("accountId", a.ID))
		return result, err
	}
	if _, err := uowCtx.ResetTokens().Create(ctx, account.CreateResetTokenInput{
		Token:     token,
		AccountID: a.ID,
		CreatedAt: s.now(),
	}); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("accountId", a.ID))
		return result, err
	}
	if err := uowCtx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token has been issued.",
		logging.Entry("accountId", a.ID),
	)
	return Result{Account: a, Token: token}, nil
}
