package account

import (
	c "accounthub/internal/core/domain/common"
	e "accounthub/internal/core/domain/errors"
	"fmt"
	"time"
)

// ID is the storage-assigned key, it never leaves the process.
type ID int64

// PublicID is the only account identifier exposed to API clients.
type PublicID string

type AddressID string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type VerificationToken string

type SessionToken string

type Account struct {
	ID                ID
	PublicID          PublicID
	Email             c.Email
	FirstName         string
	LastName          string
	PasswordHash      PasswordHash
	EmailVerified     bool
	VerificationToken c.Optional[VerificationToken]
	Roles             []Role
	Addresses         []Address
	CreatedAt         time.Time
}

func (a *Account) Validate() error {
	if a.PublicID == "" {
		return e.NewInvalidStateError(fmt.Sprintf("public id is not set for account %d", a.ID))
	}
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for account %d", a.ID))
	}
	if !a.EmailVerified && !a.VerificationToken.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("account %d is unverified but has no verification token", a.ID),
		)
	}
	return nil
}

// Authorities expands the account roles into the flat set of granted
// authority names: every role name plus every permission reachable from it.
func (a *Account) Authorities() []string {
	seen := make(map[string]struct{})
	authorities := make([]string, 0, len(a.Roles))
	for _, role := range a.Roles {
		if _, ok := seen[string(role.Name)]; !ok {
			seen[string(role.Name)] = struct{}{}
			authorities = append(authorities, string(role.Name))
		}
		for _, permission := range role.Permissions {
			if _, ok := seen[string(permission)]; !ok {
				seen[string(permission)] = struct{}{}
				authorities = append(authorities, string(permission))
			}
		}
	}
	return authorities
}

type Address struct {
	ID         ID
	AddressID  AddressID
	Type       string
	City       string
	Country    string
	PostalCode string
	StreetName string
}

// Principal is the authentication view of an account, consumed by the
// login boundary only.
type Principal struct {
	AccountID    ID
	PublicID     PublicID
	Email        c.Email
	PasswordHash PasswordHash
	Enabled      bool
	Authorities  []string
}

func NewPrincipal(a Account) Principal {
	return Principal{
		AccountID:    a.ID,
		PublicID:     a.PublicID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Enabled:      a.EmailVerified,
		Authorities:  a.Authorities(),
	}
}
