package getaddress

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/get_address"
	"accounthub/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	addressID := chi.URLParam(r, "addressID")

	result, err := h.service.Run(
		r.Context(),
		service.Input{AddressID: account.AddressID(addressID)},
	)
	if errors.Is(err, account.ErrAddressDoesNotExist) {
		response.RenderNotFound(rw, r, "address does not exist")
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	respAddress := response.Address{}
	respAddress.FromDomainAddress(result.Address)
	response.Render(rw, respAddress, http.StatusOK)
}
