package loginwithemail

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	ratelimiter "accounthub/internal/core/domain/rate_limiter"
	"accounthub/internal/core/services"
	loginwithemail "accounthub/internal/core/services/log_in_with_email"
	"accounthub/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[loginwithemail.Input, loginwithemail.Result]
}

func New(
	service services.Service[loginwithemail.Input, loginwithemail.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
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

	result, err := h.service.Run(
		r.Context(),
		loginwithemail.Input{Email: c.NewEmail(input.Email), Password: account.RawPassword(input.Password)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw, r)
		return
	}
	if errors.Is(err, account.ErrInvalidCredentials) {
		response.RenderError(rw, r, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if errors.Is(err, account.ErrAccountNotVerified) {
		response.RenderError(rw, r, "account is not verified", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw, r)
		return
	}

	response.Render(rw, Result{Token: string(result.Token)}, http.StatusOK)
}
