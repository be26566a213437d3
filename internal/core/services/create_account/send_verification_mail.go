package createaccount

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

// serviceWithVerificationMailSending delivers the verification mail after a
// successful creation. Delivery failure is logged and swallowed, account
// creation must not fail because of a mail outage.
type serviceWithVerificationMailSending struct {
	log    logging.Logger
	sender account.VerificationMailSender
	inner  services.Service[Input, Result]
}

func NewWithVerificationMailSending(
	log logging.Logger,
	sender account.VerificationMailSender,
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
	return &serviceWithVerificationMailSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithVerificationMailSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending verification mail.", logging.Entry("err", err))
		return result, err
	}

	sendErr := s.sender.SendVerificationMail(ctx, result.Account)
	if sendErr != nil {
		s.log.Error(
			ctx,
			"Could not send verification mail.",
			logging.Entry("accountId", result.Account.ID),
			logging.Entry("email", result.Account.Email),
			logging.Entry("err", sendErr),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Verification mail has been sent.",
		logging.Entry("accountId", result.Account.ID),
		logging.Entry("email", result.Account.Email),
	)
	return result, nil
}
