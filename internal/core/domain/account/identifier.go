package account

type IDGenerator interface {
	GeneratePublicID() PublicID
	GenerateAddressID() AddressID
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
