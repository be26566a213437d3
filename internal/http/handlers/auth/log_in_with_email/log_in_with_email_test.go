package loginwithemail

import (
	"accounthub/internal/core/domain/account"
	ratelimiter "accounthub/internal/core/domain/rate_limiter"
	service "accounthub/internal/core/services/log_in_with_email"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const TOKEN = "test-session-token"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = account.SessionToken(TOKEN)
	return result, nil
}

func TestLogInWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email", "password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid credentials",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceErr:     account.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "account is not verified",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceErr:     account.ErrAccountNotVerified,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		stub := &stubService{err: testcase.serviceErr}
		handler := New(stub)

		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(testcase.body))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, testcase.expectedStatus, recorder.Result().StatusCode, testcase.id)
	}
}

func TestLogInWithEmailHandlerRendersToken(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	request := httptest.NewRequest(
		http.MethodPost,
		"/auth/login",
		strings.NewReader(`{"email": "Test@test.test", "password": "test-password"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Result().StatusCode)
	assert.Contains(t, recorder.Body.String(), TOKEN)
	assert.Equal(t, "test@test.test", string(stub.input.Email))
}
