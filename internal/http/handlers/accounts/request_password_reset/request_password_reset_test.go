package requestpasswordreset

import (
	"accounthub/internal/core/domain/account"
	ratelimiter "accounthub/internal/core/domain/rate_limiter"
	service "accounthub/internal/core/services/request_password_reset"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const TOKEN = "test-reset-token"

type stubService struct {
	sent  bool
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = account.ResetToken(TOKEN)
	result.Sent = s.sent
	return result, nil
}

func TestRequestPasswordResetHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		sent           bool
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "sent",
			body:           `{"email": "test@test.test"}`,
			sent:           true,
			expectedStatus: http.StatusOK,
			expectedBody:   "SUCCESS",
		},
		{
			id:             "not sent",
			body:           `{"email": "test@test.test"}`,
			sent:           false,
			expectedStatus: http.StatusOK,
			expectedBody:   "ERROR",
		},
		{
			id:             "unknown email is not disclosed",
			body:           `{"email": "test@test.test"}`,
			serviceErr:     account.ErrAccountDoesNotExist,
			expectedStatus: http.StatusOK,
			expectedBody:   "ERROR",
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@test.test"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		stub := &stubService{sent: testcase.sent, err: testcase.serviceErr}
		handler := New(stub, false)

		request := httptest.NewRequest(
			http.MethodPost,
			"/users/password-reset-request",
			strings.NewReader(testcase.body),
		)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, testcase.expectedStatus, recorder.Result().StatusCode, testcase.id)
		if testcase.expectedBody != "" {
			assert.Contains(t, recorder.Body.String(), testcase.expectedBody, testcase.id)
		}
	}
}

func TestRequestPasswordResetHandlerTestMode(t *testing.T) {
	stub := &stubService{sent: true}
	handler := New(stub, true)

	request := httptest.NewRequest(
		http.MethodPost,
		"/users/password-reset-request",
		strings.NewReader(`{"email": "test@test.test"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Result().StatusCode)
	assert.Equal(t, TOKEN, recorder.Header().Get("x-test-password-reset-token"))
}
