package getme

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/core/services"
	"accounthub/internal/core/services/auth"
	"context"
)

type Input struct {
	Account c.Optional[account.Account]
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Account = c.NewOptional(a, true)
	return i
}

type Result struct {
	Account account.Account
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.Account.IsPresent {
		return result, account.ErrAccountDoesNotExist
	}
	return Result{Account: input.Account.Value}, nil
}
