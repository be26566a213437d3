package requestpasswordreset

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/core/domain/logging"
	uow "accounthub/internal/core/domain/unit_of_work"
	"accounthub/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL       = "test@test.test"
	PUBLIC_ID   = "test-public-id-of-30-chars-abc"
	RESET_TOKEN = "test-reset-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	Uow               *uow.FakeUnitOfWork
	AccountRepository *account.FakeRepository
	TokenCodec        *account.FakeTokenCodec
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.AccountRepository = suite.Uow.Context.AccountRepository
	suite.TokenCodec = account.NewFakeTokenCodec(RESET_TOKEN, PUBLIC_ID)
	suite.Service = New(
		suite.Logger,
		suite.Uow,
		suite.AccountRepository,
		suite.TokenCodec,
		time.Hour,
		func() time.Time { return NOW },
	)
}

func TestRequestPasswordResetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createAccount()

	result, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.Nil(err)
	s.Equal(account.ResetToken(RESET_TOKEN), result.Token)
	s.Equal(created.ID, result.Account.ID)
	s.False(result.Sent)
	s.True(s.Uow.Context.WasCommitCalled)

	tokens := s.Uow.Context.ResetTokenRepository.Tokens
	s.Len(tokens, 1)
	s.Equal(created.ID, tokens[0].AccountID)
	s.Len(s.TokenCodec.IssuedTTLs, 1)
	s.Equal(time.Hour, s.TokenCodec.IssuedTTLs[0])
}

func (s *testSuite) TestNewRequestSupersedesOldTokens() {
	created := s.createAccount()
	_, err := s.Uow.Context.ResetTokenRepository.Create(
		context.Background(),
		account.CreateResetTokenInput{
			Token:     account.ResetToken("stale-token"),
			AccountID: created.ID,
			CreatedAt: NOW.Add(-time.Hour),
		},
	)
	s.Nil(err)

	_, err = s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.Nil(err)
	tokens := s.Uow.Context.ResetTokenRepository.Tokens
	s.Len(tokens, 1)
	s.Equal(account.ResetToken(RESET_TOKEN), tokens[0].Token)
}

func (s *testSuite) TestUnknownEmail() {
	s.createAccount()

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail("unknown@test.test")},
	)
	s.True(errors.Is(err, account.ErrAccountDoesNotExist))
	s.Len(s.Uow.Context.ResetTokenRepository.Tokens, 0)
}

func (s *testSuite) TestSentFlagSetByMailDecorator() {
	s.createAccount()
	sender := account.NewFakeResetMailSender()
	service := NewWithResetMailSending(s.Logger, sender, s.Service)

	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.Nil(err)
	s.True(result.Sent)
	s.Len(sender.Sent, 1)
	s.Equal(account.ResetToken(RESET_TOKEN), sender.Sent[0])
}

func (s *testSuite) TestMailDecoratorSkipsMailOnInnerError() {
	s.createAccount()
	sender := account.NewFakeResetMailSender()
	service := NewWithResetMailSending(s.Logger, sender, s.Service)

	result, err := service.Run(
		context.Background(),
		Input{Email: c.NewEmail("unknown@test.test")},
	)

	s.True(errors.Is(err, account.ErrAccountDoesNotExist))
	s.False(result.Sent)
	s.Len(sender.Sent, 0)
}

func (s *testSuite) TestMailDecoratorPassesThroughCanceledContext() {
	sender := account.NewFakeResetMailSender()
	service := NewWithResetMailSending(s.Logger, sender, &canceledService{})

	_, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.True(errors.Is(err, context.Canceled))
	s.Len(sender.Sent, 0)
}

type canceledService struct{}

func (s *canceledService) Run(ctx context.Context, input Input) (Result, error) {
	return Result{}, context.Canceled
}

func (s *testSuite) TestSendFailureReportsNotSent() {
	s.createAccount()
	sender := account.NewFakeResetMailSender()
	sender.ReturnError = true
	service := NewWithResetMailSending(s.Logger, sender, s.Service)

	result, err := service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.Nil(err)
	s.False(result.Sent)
	s.Len(s.Uow.Context.ResetTokenRepository.Tokens, 1)
}

func (s *testSuite) createAccount() account.Account {
	s.T().Helper()
	a, err := s.AccountRepository.Create(
		context.Background(),
		account.CreateAccountInput{
			PublicID:      PUBLIC_ID,
			Email:         c.NewEmail(EMAIL),
			PasswordHash:  account.PasswordHash("test-password-hash"),
			EmailVerified: true,
			CreatedAt:     NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return a
}
