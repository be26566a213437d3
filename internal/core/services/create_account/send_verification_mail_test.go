package createaccount

import (
	"accounthub/internal/core/domain/account"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type stubService struct {
	Result Result
	Err    error
	Calls  int
}

func (s *stubService) Run(ctx context.Context, input Input) (Result, error) {
	s.Calls++
	return s.Result, s.Err
}

type sendMailTestSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Sender  *account.FakeVerificationMailSender
	Inner   *stubService
	Service services.Service[Input, Result]
}

func (suite *sendMailTestSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Sender = account.NewFakeVerificationMailSender()
	suite.Inner = &stubService{
		Result: Result{Account: account.Account{ID: 1, PublicID: PUBLIC_ID, Email: EMAIL}},
	}
	suite.Service = NewWithVerificationMailSending(suite.Logger, suite.Sender, suite.Inner)
}

func TestSendVerificationMailService(t *testing.T) {
	suite.Run(t, new(sendMailTestSuite))
}

func (suite *sendMailTestSuite) TestSendsMailOnSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(account.ID(1), result.Account.ID)
	assert.Equal(1, suite.Sender.SentCount())
}

func (suite *sendMailTestSuite) TestDoesNotSendMailOnError() {
	suite.Inner.Err = account.ErrEmailAlreadyExists

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.Equal(0, suite.Sender.SentCount())
}

func (suite *sendMailTestSuite) TestSendFailureDoesNotFailCreation() {
	suite.Sender.ReturnError = true

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(account.ID(1), result.Account.ID)
	assert.Equal(0, suite.Sender.SentCount())
}
