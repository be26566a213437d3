package getaccountbyemail

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL     = "test@test.test"
	PUBLIC_ID = "test-public-id-of-30-chars-abc"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	AccountRepository *account.FakeRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.AccountRepository = account.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.AccountRepository)
}

func TestGetAccountByEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createAccount()

	result, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	s.Nil(err)
	s.Equal(created.ID, result.Account.ID)
	s.Equal(created.PublicID, result.Account.PublicID)
	s.Equal(created.Email, result.Account.Email)
}

func (s *testSuite) TestAccountDoesNotExist() {
	s.createAccount()

	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail("unknown@test.test")},
	)
	s.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (s *testSuite) createAccount() account.Account {
	s.T().Helper()
	a, err := s.AccountRepository.Create(
		context.Background(),
		account.CreateAccountInput{
			PublicID:     PUBLIC_ID,
			Email:        c.NewEmail(EMAIL),
			FirstName:    "Test",
			LastName:     "Testov",
			PasswordHash: account.PasswordHash("test-password-hash"),
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return a
}
