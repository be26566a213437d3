package logout

import (
	"accounthub/internal/core/domain/account"
	"accounthub/internal/core/services"
	logout "accounthub/internal/core/services/log_out"
	"accounthub/internal/http/handlers/auth"
	"accounthub/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw, r)
		return
	}
	_, err := h.service.Run(
		r.Context(),
		logout.Input{Token: account.SessionToken(token)},
	)
	if errors.Is(err, account.ErrSessionDoesNotExist) {
		response.RenderUnauthorized(rw, r)
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
