package getaccount

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/get_account"
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
	publicID := chi.URLParam(r, "accountID")

	result, err := h.service.Run(
		r.Context(),
		service.Input{PublicID: account.PublicID(publicID)},
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
