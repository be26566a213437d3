package getaddress

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	AddressID account.AddressID
}

type Result struct {
	Address account.Address
}

type service struct {
	log               logging.Logger
	addressRepository account.AddressRepository
}

func New(
	log logging.Logger,
	addressRepository account.AddressRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if addressRepository == nil {
		panic(e.NewNilArgumentError("addressRepository"))
	}
	return &service{log: log, addressRepository: addressRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	address, err := s.addressRepository.GetByAddressID(ctx, input.AddressID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAddressDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("addressId", input.AddressID))
		return result, err
	}
	return Result{Address: address}, nil
}
