package auth

import (
	"accounthub/internal/core/domain/account"
	"accounthub/internal/core/services"
	"accounthub/internal/core/services/auth"
	getaccountbysessiontoken "accounthub/internal/core/services/get_account_by_session_token"
	"accounthub/internal/http/handlers/response"
	"context"
	"errors"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

func ParseToken(r *http.Request) (token account.SessionToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	if !strings.HasPrefix(header, AUTH_TOKEN_PREFIX) {
		return token, false
	}
	raw := strings.TrimPrefix(header, AUTH_TOKEN_PREFIX)
	if len(raw) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return account.SessionToken(raw), true
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			ctx := context.WithValue(r.Context(), auth.CONTEXT_AUTH_TOKEN_KEY, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuthentication rejects requests whose bearer token does not
// resolve to an account session.
func RequireAuthentication(
	service services.Service[getaccountbysessiontoken.Input, getaccountbysessiontoken.Result],
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ParseToken(r)
			if !ok {
				response.RenderUnauthorized(w, r)
				return
			}
			_, err := service.Run(r.Context(), getaccountbysessiontoken.Input{Token: token})
			if errors.Is(err, account.ErrAccountDoesNotExist) {
				response.RenderUnauthorized(w, r)
				return
			}
			if err != nil {
				response.RenderInternalError(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
