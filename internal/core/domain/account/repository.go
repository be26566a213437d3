package account

import (
	c "accounthub/internal/core/domain/common"
	"context"
	"time"
)

type CreateAddressInput struct {
	AddressID  AddressID
	Type       string
	City       string
	Country    string
	PostalCode string
	StreetName string
}

type CreateAccountInput struct {
	PublicID          PublicID
	Email             c.Email
	FirstName         string
	LastName          string
	PasswordHash      PasswordHash
	EmailVerified     bool
	VerificationToken c.Optional[VerificationToken]
	Roles             []RoleName
	Addresses         []CreateAddressInput
	CreatedAt         time.Time
}

type UpdateAccountInput struct {
	PublicID  PublicID
	FirstName string
	LastName  string
}

type ListOptions struct {
	Offset uint
	Limit  uint
}

type Repository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByPublicID(ctx context.Context, publicID PublicID) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (Account, error)
	Delete(ctx context.Context, publicID PublicID) error
	List(ctx context.Context, options ListOptions) ([]Account, error)
	SetPassword(ctx context.Context, id ID, passwordHash PasswordHash) error
	// Verify clears the matching verification token and marks the account
	// verified, both in one statement. ErrAccountDoesNotExist if no
	// unverified account holds the token.
	Verify(ctx context.Context, token VerificationToken) (Account, error)
}

type AddressRepository interface {
	ListByAccount(ctx context.Context, publicID PublicID) ([]Address, error)
	GetByAddressID(ctx context.Context, addressID AddressID) (Address, error)
}

type EnsureRoleInput struct {
	Name        RoleName
	Permissions []Permission
}

type RoleRepository interface {
	// EnsureRole creates the role and its permissions if absent, by name.
	// Calling it repeatedly never duplicates reference data.
	EnsureRole(ctx context.Context, input EnsureRoleInput) (Role, error)
}

type CreateSessionInput struct {
	AccountID ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetAccountByToken(ctx context.Context, token SessionToken) (Account, error)
	Delete(ctx context.Context, token SessionToken) (accountID ID, err error)
}
