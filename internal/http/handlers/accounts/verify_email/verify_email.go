package verifyemail

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/services"
	service "accounthub/internal/core/services/verify_email"
	"accounthub/internal/http/handlers/response"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.RenderError(rw, r, "token query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: account.VerificationToken(token)},
	)
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	response.Render(
		rw,
		response.NewOperationStatus(response.OPERATION_VERIFY_EMAIL, result.Verified),
		http.StatusOK,
	)
}
