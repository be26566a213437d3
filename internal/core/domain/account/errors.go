package account

import "errors"

var (
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrAccountDoesNotExist    = errors.New("account does not exist")
	ErrAddressDoesNotExist    = errors.New("address does not exist")
	ErrResetTokenDoesNotExist = errors.New("password reset token does not exist")
	ErrSessionDoesNotExist    = errors.New("session does not exist")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountNotVerified     = errors.New("account email is not verified")
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)
