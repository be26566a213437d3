package createaccount

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	"accounthub/internal/core/services"
	createaccount "accounthub/internal/core/services/create_account"
	"accounthub/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[createaccount.Input, createaccount.Result]
	isTestMode bool
}

func New(
	service services.Service[createaccount.Input, createaccount.Result],
	isTestMode bool,
) *Handler {
	return &Handler{service: service, isTestMode: isTestMode}
}

type AddressInput struct {
	Type       string `json:"type"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	StreetName string `json:"streetName"`
}

func (i AddressInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.In("SHIPPING", "BILLING")),
		validation.Field(&i.City, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Country, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.PostalCode, validation.Required, validation.Length(0, 16)),
		validation.Field(&i.StreetName, validation.Required, validation.Length(0, 128)),
	)
}

type Input struct {
	Email     string         `json:"email"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Password  string         `json:"password"`
	Addresses []AddressInput `json:"addresses"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.FirstName, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.LastName, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(&i.Addresses, validation.Length(0, 8)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, r, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	addresses := make([]createaccount.AddressInput, 0, len(input.Addresses))
	for _, address := range input.Addresses {
		addresses = append(addresses, createaccount.AddressInput{
			Type:       address.Type,
			City:       address.City,
			Country:    address.Country,
			PostalCode: address.PostalCode,
			StreetName: address.StreetName,
		})
	}

	result, err := h.service.Run(
		r.Context(),
		createaccount.Input{
			Email:     c.NewEmail(input.Email),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Password:  account.RawPassword(input.Password),
			Addresses: addresses,
		},
	)
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		response.RenderError(rw, r, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	if h.isTestMode && result.Account.VerificationToken.IsPresent {
		rw.Header().Set("x-test-verification-token", string(result.Account.VerificationToken.Value))
	}
	respAccount := response.Account{}
	respAccount.FromDomainAccount(result.Account)
	response.Render(rw, respAccount, http.StatusCreated)
}
