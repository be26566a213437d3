package listaccounts

import (
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/list_accounts"
	"accounthub/internal/http/handlers/response"
	"net/http"
	"strconv"
)

const (
	DEFAULT_PAGE  = 1
	DEFAULT_LIMIT = 20
	MAX_LIMIT     = 100
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
	Accounts []response.Account `json:"accounts"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	page, err := parseUintParam(r.URL.Query().Get("page"), DEFAULT_PAGE)
	if err != nil {
		response.RenderError(rw, r, "invalid page query parameter", http.StatusBadRequest)
		return
	}
	limit, err := parseUintParam(r.URL.Query().Get("limit"), DEFAULT_LIMIT)
	if err != nil || limit > MAX_LIMIT {
		response.RenderError(rw, r, "invalid limit query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Page: page, Limit: limit})
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	respAccounts := make([]response.Account, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		respAccount := response.Account{}
		respAccount.FromDomainAccount(a)
		respAccounts = append(respAccounts, respAccount)
	}
	response.Render(rw, Result{Accounts: respAccounts}, http.StatusOK)
}

func parseUintParam(raw string, def uint) (uint, error) {
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
