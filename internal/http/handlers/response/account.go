package response

import (
	"accounthub/internal/core/domain/account"
	"time"
)

// Account is the wire projection of a domain account. The password hash
// and the verification token never leave the server.
type Account struct {
	PublicID  string    `json:"publicId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Verified  bool      `json:"emailVerified"`
	Addresses []Address `json:"addresses,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.PublicID = string(da.PublicID)
	a.Email = string(da.Email)
	a.FirstName = da.FirstName
	a.LastName = da.LastName
	a.Verified = da.EmailVerified
	for _, address := range da.Addresses {
		respAddress := Address{}
		respAddress.FromDomainAddress(address)
		a.Addresses = append(a.Addresses, respAddress)
	}
	a.CreatedAt = da.CreatedAt
}

type Address struct {
	AddressID  string `json:"addressId"`
	Type       string `json:"type"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	StreetName string `json:"streetName"`
}

func (a *Address) FromDomainAddress(da account.Address) {
	a.AddressID = string(da.AddressID)
	a.Type = da.Type
	a.City = da.City
	a.Country = da.Country
	a.PostalCode = da.PostalCode
	a.StreetName = da.StreetName
}
