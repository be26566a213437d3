package updateaccount

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/update_account"
	"accounthub/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.LastName, validation.Required, validation.Length(0, 64)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, "accountID")

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, r, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			PublicID:  account.PublicID(publicID),
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
	)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderNotFound(rw, r, "account does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	respAccount := response.Account{}
	respAccount.FromDomainAccount(result.Account)
	response.Render(rw, respAccount, http.StatusOK)
}
