package services

import (
	"accounthub/internal/app/deps"
	drl "accounthub/internal/core/domain/rate_limiter"
	"accounthub/internal/core/services"
	"accounthub/internal/core/services/auth"
	createaccount "accounthub/internal/core/services/create_account"
	deleteaccount "accounthub/internal/core/services/delete_account"
	getaccount "accounthub/internal/core/services/get_account"
	getaccountbyemail "accounthub/internal/core/services/get_account_by_email"
	getaccountbysessiontoken "accounthub/internal/core/services/get_account_by_session_token"
	getaddress "accounthub/internal/core/services/get_address"
	getaddresses "accounthub/internal/core/services/get_addresses"
	getme "accounthub/internal/core/services/get_me"
	listaccounts "accounthub/internal/core/services/list_accounts"
	loadprincipal "accounthub/internal/core/services/load_principal"
	loginwithemail "accounthub/internal/core/services/log_in_with_email"
	logout "accounthub/internal/core/services/log_out"
	ratelimiting "accounthub/internal/core/services/rate_limiting"
	requestpasswordreset "accounthub/internal/core/services/request_password_reset"
	resetpassword "accounthub/internal/core/services/reset_password"
	updateaccount "accounthub/internal/core/services/update_account"
	verifyemail "accounthub/internal/core/services/verify_email"
)

type Services struct {
	CreateAccount            services.Service[createaccount.Input, createaccount.Result]
	GetAccount               services.Service[getaccount.Input, getaccount.Result]
	GetAccountByEmail        services.Service[getaccountbyemail.Input, getaccountbyemail.Result]
	UpdateAccount            services.Service[updateaccount.Input, updateaccount.Result]
	DeleteAccount            services.Service[deleteaccount.Input, deleteaccount.Result]
	ListAccounts             services.Service[listaccounts.Input, listaccounts.Result]
	GetAddresses             services.Service[getaddresses.Input, getaddresses.Result]
	GetAddress               services.Service[getaddress.Input, getaddress.Result]
	VerifyEmail              services.Service[verifyemail.Input, verifyemail.Result]
	RequestPasswordReset     services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]
	LoadPrincipal            services.Service[loadprincipal.Input, loadprincipal.Result]
	LogInWithEmail           services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                   services.Service[logout.Input, logout.Result]
	GetAccountBySessionToken services.Service[getaccountbysessiontoken.Input, getaccountbysessiontoken.Result]
	GetMe                    services.Service[getme.Input, getme.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateAccount = createaccount.NewWithVerificationMailSending(
		deps.Logger,
		deps.MailPublisher,
		createaccount.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.IDGenerator,
			deps.TokenCodec,
			deps.EventPublisher,
			deps.Config.VerificationTokenValidDuration,
			deps.Now,
		),
	)
	s.GetAccount = getaccount.New(deps.Logger, deps.AccountRepository)
	s.GetAccountByEmail = getaccountbyemail.New(deps.Logger, deps.AccountRepository)
	s.UpdateAccount = updateaccount.New(deps.Logger, deps.AccountRepository)
	s.DeleteAccount = deleteaccount.New(deps.Logger, deps.AccountRepository, deps.EventPublisher)
	s.ListAccounts = listaccounts.New(deps.Logger, deps.AccountRepository)
	s.GetAddresses = getaddresses.New(deps.Logger, deps.AddressRepository)
	s.GetAddress = getaddress.New(deps.Logger, deps.AddressRepository)
	s.VerifyEmail = verifyemail.New(deps.Logger, deps.AccountRepository, deps.TokenCodec)
	s.RequestPasswordReset = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		requestpasswordreset.NewWithResetMailSending(
			deps.Logger,
			deps.MailPublisher,
			requestpasswordreset.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.AccountRepository,
				deps.TokenCodec,
				deps.Config.PasswordResetValidDuration,
				deps.Now,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.TokenCodec,
		deps.PasswordHasher,
	)
	s.LoadPrincipal = loadprincipal.New(deps.Logger, deps.AccountRepository)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.AccountRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(deps.Logger, deps.SessionRepository)
	s.GetAccountBySessionToken = getaccountbysessiontoken.New(deps.Logger, deps.SessionRepository)
	s.GetMe = auth.WithAuthentication(
		deps.SessionRepository,
		getme.New(),
	)

	return s
}
