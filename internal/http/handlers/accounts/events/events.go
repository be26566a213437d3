package events

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/core/services"
	s "accounthub/internal/core/services/get_account_by_session_token"
	"accounthub/internal/http/handlers/auth"
	"accounthub/internal/http/handlers/response"
	eventpublisher "accounthub/internal/implementations/event_publisher"
	"errors"
	"net/http"
	"net/url"

	"github.com/r3labs/sse/v2"
)

type Handler struct {
	log       logging.Logger
	service   services.Service[s.Input, s.Result]
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	service services.Service[s.Input, s.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, sseServer: sseServer, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw, r)
		return
	}

	result, err := h.service.Run(r.Context(), s.Input{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderUnauthorized(rw, r)
		default:
			response.RenderInternalError(rw, r)
		}
		return
	}

	// There is a single lifecycle stream, subscribers do not get to pick one.
	query := url.Values{}
	query.Set("stream", eventpublisher.STREAM_ID)
	r.URL.RawQuery = query.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from account events.",
			logging.Entry("accountID", result.Account.ID),
		)
	}()

	h.log.Info(
		r.Context(),
		"Subscribed to account events.",
		logging.Entry("accountID", result.Account.ID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
