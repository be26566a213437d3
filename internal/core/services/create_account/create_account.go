package createaccount

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

type AddressInput struct {
	Type       string
	City       string
	Country    string
	PostalCode string
	StreetName string
}

type Input struct {
	Email     c.Email
	FirstName string
	LastName  string
	Password  account.RawPassword
	Addresses []AddressInput
}

type Result struct {
	Account account.Account
}

type service struct {
	log             logging.Logger
	unitOfWork      uow.UnitOfWork
	passwordHasher  account.PasswordHasher
	idGenerator     account.IDGenerator
	tokenCodec      account.TokenCodec
	eventPublisher  account.EventPublisher
	verificationTTL time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	idGenerator account.IDGenerator,
	tokenCodec account.TokenCodec,
	eventPublisher account.EventPublisher,
	verificationTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if idGenerator == nil {
		panic(e.NewNilArgumentError("idGenerator"))
	}
	if tokenCodec == nil {
		panic(e.NewNilArgumentError("tokenCodec"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		unitOfWork:      unitOfWork,
		passwordHasher:  passwordHasher,
		idGenerator:     idGenerator,
		tokenCodec:      tokenCodec,
		eventPublisher:  eventPublisher,
		verificationTTL: verificationTTL,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	publicID := s.idGenerator.GeneratePublicID()
	verificationToken := s.tokenCodec.Issue(publicID, s.verificationTTL)

	addresses := make([]account.CreateAddressInput, 0, len(input.Addresses))
	for _, addressInput := range input.Addresses {
		addresses = append(addresses, account.CreateAddressInput{
			AddressID:  s.idGenerator.GenerateAddressID(),
			Type:       addressInput.Type,
			City:       addressInput.City,
			Country:    addressInput.Country,
			PostalCode: addressInput.PostalCode,
			StreetName: addressInput.StreetName,
		})
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	createdAccount, err := uow.Accounts().Create(ctx, account.CreateAccountInput{
		PublicID:          publicID,
		Email:             input.Email,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		PasswordHash:      passwordHash,
		EmailVerified:     false,
		VerificationToken: c.NewOptional(account.VerificationToken(verificationToken), true),
		Roles:             []account.RoleName{account.RoleUser},
		Addresses:         addresses,
		CreatedAt:         s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.eventPublisher.PublishAccountCreated(ctx, createdAccount)
	s.log.Info(
		ctx,
		"New account has been created.",
		logging.Entry("accountId", createdAccount.ID),
		logging.Entry("publicId", createdAccount.PublicID),
	)
	return Result{Account: createdAccount}, nil
}
