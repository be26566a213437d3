package getaddress

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
	EMAIL      = "test@test.test"
	PUBLIC_ID  = "test-public-id-of-30-chars-abc"
	ADDRESS_ID = "test-address-id-of-30-chars-01"
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

func TestGetAddressService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.createAccount()

	result, err := s.Service.Run(
		context.Background(),
		Input{AddressID: account.AddressID(ADDRESS_ID)},
	)

	s.Nil(err)
	s.Equal(account.AddressID(ADDRESS_ID), result.Address.AddressID)
	s.Equal("SHIPPING", result.Address.Type)
	s.Equal("Lisbon", result.Address.City)
}

func (s *testSuite) TestAddressDoesNotExist() {
	s.createAccount()

	_, err := s.Service.Run(
		context.Background(),
		Input{AddressID: account.AddressID("unknown-address-id")},
	)
	s.True(errors.Is(err, account.ErrAddressDoesNotExist))
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
			Addresses: []account.CreateAddressInput{
				{
					AddressID:  ADDRESS_ID,
					Type:       "SHIPPING",
					City:       "Lisbon",
					Country:    "Portugal",
					PostalCode: "1000-001",
					StreetName: "Avenida da Liberdade 1",
				},
			},
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return a
}
