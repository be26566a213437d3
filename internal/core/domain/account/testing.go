package account

import (
	c "accounthub/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"
)

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	addresses := make([]Address, 0, len(input.Addresses))
	for ix, addressInput := range input.Addresses {
		addresses = append(addresses, Address{
			ID:         maxID + 1 + ID(ix)*1000,
			AddressID:  addressInput.AddressID,
			Type:       addressInput.Type,
			City:       addressInput.City,
			Country:    addressInput.Country,
			PostalCode: addressInput.PostalCode,
			StreetName: addressInput.StreetName,
		})
	}
	roles := make([]Role, 0, len(input.Roles))
	for _, roleName := range input.Roles {
		roles = append(roles, roleByName(roleName))
	}
	a = Account{
		ID:                maxID + 1,
		PublicID:          input.PublicID,
		Email:             input.Email,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		PasswordHash:      input.PasswordHash,
		EmailVerified:     input.EmailVerified,
		VerificationToken: input.VerificationToken,
		Roles:             roles,
		Addresses:         addresses,
		CreatedAt:         input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func roleByName(name RoleName) Role {
	for _, role := range DefaultRoles() {
		if role.Name == name {
			return role
		}
	}
	return Role{Name: name}
}

func (r *FakeRepository) GetByPublicID(ctx context.Context, publicID PublicID) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %v", publicID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.PublicID == publicID {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		if existing.Email == email {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateAccountInput) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.PublicID == input.PublicID {
			r.Accounts[ix].FirstName = input.FirstName
			r.Accounts[ix].LastName = input.LastName
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, publicID PublicID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.PublicID == publicID {
			r.Accounts = append(r.Accounts[:ix], r.Accounts[ix+1:]...)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) List(ctx context.Context, options ListOptions) ([]Account, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list accounts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if options.Offset >= uint(len(r.Accounts)) {
		return []Account{}, nil
	}
	end := options.Offset + options.Limit
	if end > uint(len(r.Accounts)) {
		end = uint(len(r.Accounts))
	}
	page := make([]Account, 0, options.Limit)
	page = append(page, r.Accounts[options.Offset:end]...)
	return page, nil
}

func (r *FakeRepository) SetPassword(ctx context.Context, id ID, passwordHash PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for account %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if existing.ID == id {
			r.Accounts[ix].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

func (r *FakeRepository) Verify(ctx context.Context, token VerificationToken) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Accounts {
		if !existing.EmailVerified &&
			existing.VerificationToken.IsPresent &&
			existing.VerificationToken.Value == token {
			r.Accounts[ix].EmailVerified = true
			r.Accounts[ix].VerificationToken = c.NewOptional(VerificationToken(""), false)
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) ListByAccount(ctx context.Context, publicID PublicID) ([]Address, error) {
	a, err := r.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return a.Addresses, nil
}

func (r *FakeRepository) GetByAddressID(ctx context.Context, addressID AddressID) (address Address, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Accounts {
		for _, existingAddress := range existing.Addresses {
			if existingAddress.AddressID == addressID {
				return existingAddress, nil
			}
		}
	}
	return address, ErrAddressDoesNotExist
}

type FakeResetTokenRepository struct {
	Tokens      []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetTokenRepository() *FakeResetTokenRepository {
	return &FakeResetTokenRepository{}
}

func (r *FakeResetTokenRepository) Create(
	ctx context.Context,
	input CreateResetTokenInput,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create reset token %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = PasswordResetToken{Token: input.Token, AccountID: input.AccountID, CreatedAt: input.CreatedAt}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakeResetTokenRepository) GetByToken(
	ctx context.Context,
	token ResetToken,
) (t PasswordResetToken, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Tokens {
		if existing.Token == token {
			return existing, nil
		}
	}
	return t, ErrResetTokenDoesNotExist
}

func (r *FakeResetTokenRepository) Delete(ctx context.Context, token ResetToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Tokens {
		if existing.Token == token {
			r.Tokens = append(r.Tokens[:ix], r.Tokens[ix+1:]...)
			return nil
		}
	}
	return ErrResetTokenDoesNotExist
}

func (r *FakeResetTokenRepository) DeleteForAccount(ctx context.Context, accountID ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Tokens[:0]
	for _, existing := range r.Tokens {
		if existing.AccountID != accountID {
			kept = append(kept, existing)
		}
	}
	r.Tokens = kept
	return nil
}

type FakeSessionRepository struct {
	AccountIDByToken map[SessionToken]ID
	Repository       *FakeRepository
	ReturnError      bool
	lock             sync.Mutex
}

func NewFakeSessionRepository(repository *FakeRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		AccountIDByToken: make(map[SessionToken]ID),
		Repository:       repository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.AccountIDByToken[input.Token] = input.AccountID
	return nil
}

func (r *FakeSessionRepository) GetAccountByToken(ctx context.Context, token SessionToken) (a Account, err error) {
	r.lock.Lock()
	accountID, ok := r.AccountIDByToken[token]
	r.lock.Unlock()
	if !ok {
		return a, ErrAccountDoesNotExist
	}
	for _, existing := range r.Repository.Accounts {
		if existing.ID == accountID {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	accountID, ok := r.AccountIDByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.AccountIDByToken, token)
	return accountID, nil
}

type FakeRoleRepository struct {
	Ensured []EnsureRoleInput
	lock    sync.Mutex
}

func NewFakeRoleRepository() *FakeRoleRepository {
	return &FakeRoleRepository{}
}

func (r *FakeRoleRepository) EnsureRole(ctx context.Context, input EnsureRoleInput) (Role, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Ensured {
		if existing.Name == input.Name {
			return Role{Name: existing.Name, Permissions: existing.Permissions}, nil
		}
	}
	r.Ensured = append(r.Ensured, input)
	return Role{Name: input.Name, Permissions: input.Permissions}, nil
}

type FakeIDGenerator struct {
	PublicID       PublicID
	AddressIDs     []AddressID
	nextAddressIdx int
	lock           sync.Mutex
}

func NewFakeIDGenerator(publicID string, addressIDs ...string) *FakeIDGenerator {
	g := &FakeIDGenerator{PublicID: PublicID(publicID)}
	for _, id := range addressIDs {
		g.AddressIDs = append(g.AddressIDs, AddressID(id))
	}
	return g
}

func (g *FakeIDGenerator) GeneratePublicID() PublicID {
	return g.PublicID
}

func (g *FakeIDGenerator) GenerateAddressID() AddressID {
	g.lock.Lock()
	defer g.lock.Unlock()
	if g.nextAddressIdx >= len(g.AddressIDs) {
		return AddressID(fmt.Sprintf("address-%d", g.nextAddressIdx))
	}
	id := g.AddressIDs[g.nextAddressIdx]
	g.nextAddressIdx++
	return id
}

type FakeSessionTokenGenerator struct {
	Token SessionToken
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: SessionToken(token)}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return g.Token
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeTokenCodec struct {
	Token      SignedToken
	Subject    PublicID
	Expired    bool
	Invalid    bool
	IssuedTTLs []time.Duration
	lock       sync.Mutex
}

func NewFakeTokenCodec(token string, subject string) *FakeTokenCodec {
	return &FakeTokenCodec{Token: SignedToken(token), Subject: PublicID(subject)}
}

func (c *FakeTokenCodec) Issue(subject PublicID, ttl time.Duration) SignedToken {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.IssuedTTLs = append(c.IssuedTTLs, ttl)
	return c.Token
}

func (c *FakeTokenCodec) Decode(token SignedToken) (PublicID, error) {
	if c.Invalid {
		return PublicID(""), ErrTokenInvalid
	}
	if c.Expired {
		return PublicID(""), ErrTokenExpired
	}
	return c.Subject, nil
}

func (c *FakeTokenCodec) HasExpired(token SignedToken) bool {
	return c.Expired || c.Invalid
}

type FakeVerificationMailSender struct {
	Sent        []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeVerificationMailSender() *FakeVerificationMailSender {
	return &FakeVerificationMailSender{}
}

func (s *FakeVerificationMailSender) SendVerificationMail(ctx context.Context, a Account) error {
	if s.ReturnError {
		return fmt.Errorf("could not send verification mail to %v", a.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, a)
	return nil
}

func (s *FakeVerificationMailSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeResetMailSender struct {
	Sent        []ResetToken
	SentTo      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetMailSender() *FakeResetMailSender {
	return &FakeResetMailSender{}
}

func (s *FakeResetMailSender) SendResetMail(ctx context.Context, a Account, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset mail to %v", a.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, a)
	return nil
}

type FakeEventPublisher struct {
	Created []Account
	Deleted []PublicID
	lock    sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishAccountCreated(ctx context.Context, a Account) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Created = append(p.Created, a)
}

func (p *FakeEventPublisher) PublishAccountDeleted(ctx context.Context, publicID PublicID) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Deleted = append(p.Deleted, publicID)
}
