package account

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/db"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL              = "test@test.test"
	PUBLIC_ID          = "test-public-id-of-30-chars-abc"
	PASSWORD_HASH      = "test-password-hash"
	VERIFICATION_TOKEN = "test-verification-token"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repo  *PgxAccountRepository
	roles *PgxRoleRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
	suite.roles = NewPgxRoleRepository(suite.pool)
	for _, role := range account.DefaultRoles() {
		_, err := suite.roles.EnsureRole(context.Background(), account.EnsureRoleInput{
			Name:        role.Name,
			Permissions: role.Permissions,
		})
		if err != nil {
			panic(err)
		}
	}
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxAccountRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	input := account.CreateAccountInput{
		PublicID:          PUBLIC_ID,
		Email:             c.NewEmail(EMAIL),
		FirstName:         "Test",
		LastName:          "Testov",
		PasswordHash:      PASSWORD_HASH,
		VerificationToken: c.NewOptional(account.VerificationToken(VERIFICATION_TOKEN), true),
		Roles:             []account.RoleName{account.RoleUser},
		Addresses: []account.CreateAddressInput{
			{
				AddressID:  "test-address-id-of-30-chars-ab",
				Type:       "shipping",
				City:       "Lisbon",
				Country:    "Portugal",
				PostalCode: "1000-001",
				StreetName: "Rua A",
			},
		},
		CreatedAt: NOW,
	}

	a, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(0), a.ID)
	assert.Equal(account.PublicID(PUBLIC_ID), a.PublicID)
	assert.Equal(c.NewEmail(EMAIL), a.Email)
	assert.False(a.EmailVerified)
	assert.True(a.VerificationToken.IsPresent)
	assert.True(input.CreatedAt.Equal(a.CreatedAt))

	assert.Len(a.Addresses, 1)
	assert.Equal(account.AddressID("test-address-id-of-30-chars-ab"), a.Addresses[0].AddressID)
	assert.Equal("shipping", a.Addresses[0].Type)

	assert.Len(a.Roles, 1)
	assert.Equal(account.RoleUser, a.Roles[0].Name)
	assert.ElementsMatch(
		[]account.Permission{account.PermissionRead, account.PermissionWrite},
		a.Roles[0].Permissions,
	)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createAccount(PUBLIC_ID, EMAIL)

	_, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		PublicID:          "another-public-id",
		Email:             c.NewEmail(EMAIL),
		PasswordHash:      PASSWORD_HASH,
		VerificationToken: c.NewOptional(account.VerificationToken("t"), true),
		CreatedAt:         NOW,
	})

	suite.Require().True(errors.Is(err, account.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByPublicID() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	a, err := suite.repo.GetByPublicID(context.Background(), created.PublicID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.Equal(created.Email, a.Email)

	_, err = suite.repo.GetByPublicID(context.Background(), "unknown-public-id")
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	a, err := suite.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)

	_, err = suite.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestUpdate() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	a, err := suite.repo.Update(context.Background(), account.UpdateAccountInput{
		PublicID:  created.PublicID,
		FirstName: "Renamed",
		LastName:  "Person",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Renamed", a.FirstName)
	assert.Equal("Person", a.LastName)
	assert.Equal(created.Email, a.Email)

	_, err = suite.repo.Update(context.Background(), account.UpdateAccountInput{
		PublicID:  "unknown-public-id",
		FirstName: "Renamed",
		LastName:  "Person",
	})
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestDeleteCascadesToAddresses() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	err := suite.repo.Delete(context.Background(), created.PublicID)

	assert := suite.Require()
	assert.Nil(err)

	_, err = suite.repo.GetByPublicID(context.Background(), created.PublicID)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))

	_, err = suite.repo.GetByAddressID(context.Background(), created.Addresses[0].AddressID)
	assert.True(errors.Is(err, account.ErrAddressDoesNotExist))

	err = suite.repo.Delete(context.Background(), created.PublicID)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestList() {
	for ix := 0; ix < 5; ix++ {
		suite.createAccount(
			fmt.Sprintf("test-public-id-%d", ix),
			fmt.Sprintf("test-%d@test.test", ix),
		)
	}

	accounts, err := suite.repo.List(context.Background(), account.ListOptions{Offset: 2, Limit: 2})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(accounts, 2)
	assert.Equal(account.PublicID("test-public-id-2"), accounts[0].PublicID)
	assert.Equal(account.PublicID("test-public-id-3"), accounts[1].PublicID)
	assert.Len(accounts[0].Addresses, 1)
	assert.Len(accounts[0].Roles, 1)
}

func (suite *testSuite) TestVerify() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)
	suite.Require().False(created.EmailVerified)

	a, err := suite.repo.Verify(
		context.Background(),
		account.VerificationToken(VERIFICATION_TOKEN),
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.True(a.EmailVerified)
	assert.False(a.VerificationToken.IsPresent)

	// A redeemed token never verifies twice.
	_, err = suite.repo.Verify(
		context.Background(),
		account.VerificationToken(VERIFICATION_TOKEN),
	)
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestSetPassword() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	err := suite.repo.SetPassword(context.Background(), created.ID, "new-password-hash")

	assert := suite.Require()
	assert.Nil(err)

	a, err := suite.repo.GetByPublicID(context.Background(), created.PublicID)
	assert.Nil(err)
	assert.Equal(account.PasswordHash("new-password-hash"), a.PasswordHash)
}

func (suite *testSuite) TestAddressLookups() {
	created := suite.createAccount(PUBLIC_ID, EMAIL)

	addresses, err := suite.repo.ListByAccount(context.Background(), created.PublicID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(addresses, 1)

	address, err := suite.repo.GetByAddressID(context.Background(), addresses[0].AddressID)
	assert.Nil(err)
	assert.Equal(addresses[0], address)

	_, err = suite.repo.ListByAccount(context.Background(), "unknown-public-id")
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) createAccount(publicID string, email string) account.Account {
	suite.T().Helper()
	a, err := suite.repo.Create(context.Background(), account.CreateAccountInput{
		PublicID:          account.PublicID(publicID),
		Email:             c.NewEmail(email),
		FirstName:         "Test",
		LastName:          "Testov",
		PasswordHash:      PASSWORD_HASH,
		VerificationToken: c.NewOptional(account.VerificationToken(VERIFICATION_TOKEN), true),
		Roles:             []account.RoleName{account.RoleUser},
		Addresses: []account.CreateAddressInput{
			{
				AddressID:  account.AddressID("address-" + publicID),
				Type:       "shipping",
				City:       "Lisbon",
				Country:    "Portugal",
				PostalCode: "1000-001",
				StreetName: "Rua A",
			},
		},
		CreatedAt: NOW,
	})
	if err != nil {
		suite.FailNow(err.Error())
	}
	return a
}
