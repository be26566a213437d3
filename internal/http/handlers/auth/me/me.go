package me

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/get_me"
	"accounthub/internal/http/handlers/response"
	"errors"
	"net/http"
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

type Result struct {
	Account response.Account `json:"account"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		service.Input{},
	)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderUnauthorized(rw, r)
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	respAccount := response.Account{}
	respAccount.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: respAccount}, http.StatusOK)
}
