package resetpassword

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	uow "accounthub/internal/core/domain/unit_of_work"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token    account.ResetToken
	Password account.RawPassword
}

type Result struct {
	Ok bool
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	tokenCodec     account.TokenCodec
	passwordHasher account.PasswordHasher
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	tokenCodec account.TokenCodec,
	passwordHasher account.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if tokenCodec == nil {
		panic(e.NewNilArgumentError("tokenCodec"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		tokenCodec:     tokenCodec,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Expiry is checked before touching storage, an expired token never
	// reaches the repository.
	if s.tokenCodec.HasExpired(account.SignedToken(input.Token)) {
		s.log.Info(ctx, "Password reset token has expired or is malformed.")
		return Result{Ok: false}, nil
	}

	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	uowCtx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uowCtx.Rollback(ctx)

	resetToken, err := uowCtx.ResetTokens().GetByToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrResetTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token does not match any account.")
		return Result{Ok: false}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	if err := uowCtx.Accounts().SetPassword(ctx, resetToken.AccountID, passwordHash); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("accountId", resetToken.AccountID))
		return result, err
	}
	// Single use, the redeemed token and any siblings are gone.
	if err := uowCtx.ResetTokens().DeleteForAccount(ctx, resetToken.AccountID); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("accountId", resetToken.AccountID))
		return result, err
	}
	if err := uowCtx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(
		ctx,
		"Account password has been reset.",
		logging.Entry("accountId", resetToken.AccountID),
	)
	return Result{Ok: true}, nil
}
