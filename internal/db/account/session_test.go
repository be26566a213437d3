package account

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/db"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = "test-session-token"

type sessionTestSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	accounts *PgxAccountRepository
	sessions *PgxSessionRepository
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.accounts = NewPgxRepository(suite.pool)
	suite.sessions = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) TestCreateAndGetAccount() {
	created := suite.createAccount()

	err := suite.sessions.Create(context.Background(), account.CreateSessionInput{
		AccountID: created.ID,
		Token:     SESSION_TOKEN,
		CreatedAt: NOW,
	})

	assert := suite.Require()
	assert.Nil(err)

	a, err := suite.sessions.GetAccountByToken(context.Background(), SESSION_TOKEN)
	assert.Nil(err)
	assert.Equal(created.ID, a.ID)
	assert.Equal(created.Email, a.Email)
}

func (suite *sessionTestSuite) TestGetAccountByUnknownToken() {
	suite.createAccount()

	_, err := suite.sessions.GetAccountByToken(context.Background(), "unknown-token")
	suite.Require().True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *sessionTestSuite) TestDelete() {
	created := suite.createAccount()
	err := suite.sessions.Create(context.Background(), account.CreateSessionInput{
		AccountID: created.ID,
		Token:     SESSION_TOKEN,
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)

	accountID, err := suite.sessions.Delete(context.Background(), SESSION_TOKEN)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, accountID)

	_, err = suite.sessions.Delete(context.Background(), SESSION_TOKEN)
	assert.True(errors.Is(err, account.ErrSessionDoesNotExist))
}

func (suite *sessionTestSuite) createAccount() account.Account {
	suite.T().Helper()
	a, err := suite.accounts.Create(context.Background(), account.CreateAccountInput{
		PublicID:      PUBLIC_ID,
		Email:         c.NewEmail(EMAIL),
		PasswordHash:  PASSWORD_HASH,
		EmailVerified: true,
		CreatedAt:     NOW,
	})
	if err != nil {
		suite.FailNow(err.Error())
	}
	return a
}
