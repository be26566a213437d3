package requestpasswordreset

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

// serviceWithResetMailSending delivers the reset token. The Sent flag on
// the result reports delivery success, a failed send never fails the
// request itself.
type serviceWithResetMailSending struct {
	log    logging.Logger
	sender account.ResetMailSender
	inner  services.Service[Input, Result]
}

func NewWithResetMailSending(
	log logging.Logger,
	sender account.ResetMailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetMailSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetMailSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset mail.", logging.Entry("err", err))
		return result, err
	}

	sendErr := s.sender.SendResetMail(ctx, result.Account, result.Token)
	if sendErr != nil {
		s.log.Error(
			ctx,
			"Could not send password reset mail.",
			logging.Entry("accountId", result.Account.ID),
			logging.Entry("email", result.Account.Email),
			logging.Entry("err", sendErr),
		)
		return result, nil
	}

	result.Sent = true
	s.log.Info(
		ctx,
		"Password reset mail has been sent.",
		logging.Entry("accountId", result.Account.ID),
		logging.Entry("email", result.Account.Email),
	)
	return result, nil
}
