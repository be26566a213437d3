package app

import (
	"accounthub/internal/app/deps"
	"accounthub/internal/app/services"
	createaccount "accounthub/internal/http/handlers/accounts/create_account"
	deleteaccount "accounthub/internal/http/handlers/accounts/delete_account"
	"accounthub/internal/http/handlers/accounts/events"
	getaccount "accounthub/internal/http/handlers/accounts/get_account"
	getaddress "accounthub/internal/http/handlers/accounts/get_address"
	getaddresses "accounthub/internal/http/handlers/accounts/get_addresses"
	listaccounts "accounthub/internal/http/handlers/accounts/list_accounts"
	requestpasswordreset "accounthub/internal/http/handlers/accounts/request_password_reset"
	resetpassword "accounthub/internal/http/handlers/accounts/reset_password"
	updateaccount "accounthub/internal/http/handlers/accounts/update_account"
	verifyemail "accounthub/internal/http/handlers/accounts/verify_email"
	"accounthub/internal/http/handlers/auth"
	loginwithemail "accounthub/internal/http/handlers/auth/log_in_with_email"
	logout "accounthub/internal/http/handlers/auth/log_out"
	me "accounthub/internal/http/handlers/auth/me"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	accountsRouter := chi.NewRouter()
	accountsRouter.Use(auth.SetAuthTokenToContext)
	accountsRouter.Method(http.MethodPost, "/", createaccount.New(s.CreateAccount, isTestMode))
	accountsRouter.Method(http.MethodGet, "/email-verification", verifyemail.New(s.VerifyEmail))
	accountsRouter.Method(
		http.MethodPost,
		"/password-reset-request",
		requestpasswordreset.New(s.RequestPasswordReset, isTestMode),
	)
	accountsRouter.Method(http.MethodPost, "/password-reset", resetpassword.New(s.ResetPassword))
	accountsRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer, s.GetAccountBySessionToken))
	accountsRouter.Group(func(protected chi.Router) {
		protected.Use(auth.RequireAuthentication(s.GetAccountBySessionToken))
		protected.Method(http.MethodGet, "/", listaccounts.New(s.ListAccounts))
		protected.Method(http.MethodGet, "/{accountID}", getaccount.New(s.GetAccount))
		protected.Method(http.MethodPut, "/{accountID}", updateaccount.New(s.UpdateAccount))
		protected.Method(http.MethodDelete, "/{accountID}", deleteaccount.New(s.DeleteAccount))
		protected.Method(http.MethodGet, "/{accountID}/addresses", getaddresses.New(s.GetAddresses))
		protected.Method(http.MethodGet, "/{accountID}/addresses/{addressID}", getaddress.New(s.GetAddress))
	})

	authRouter := chi.NewRouter()
	authRouter.Use(auth.SetAuthTokenToContext)
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetMe))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/users", accountsRouter)
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
