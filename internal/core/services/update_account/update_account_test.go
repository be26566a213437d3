package updateaccount

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

func TestUpdateAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createAccount()

	result, err := s.Service.Run(
		context.Background(),
		Input{PublicID: created.PublicID, FirstName: "Renamed", LastName: "Person"},
	)
	s.Nil(err)
	s.Equal("Renamed", result.Account.FirstName)
	s.Equal("Person", result.Account.LastName)
	s.Equal(created.Email, result.Account.Email)

	a, err := s.AccountRepository.GetByPublicID(context.Background(), created.PublicID)
	s.Nil(err)
	s.Equal("Renamed", a.FirstName)
}

func (s *testSuite) TestAccountDoesNotExist() {
	s.createAccount()

	_, err := s.Service.Run(
		context.Background(),
		Input{PublicID: "unknown-public-id", FirstName: "Renamed", LastName: "Person"},
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
