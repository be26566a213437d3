package verifyemail

import (
	service "accounthub/internal/core/services/verify_email"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	verified bool
	err      error
	input    *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Verified = s.verified
	return result, nil
}

func TestVerifyEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		verified       bool
		serviceErr     error
		expectedStatus int
		expectedResult string
	}{
		{
			id:             "verified",
			url:            "/users/email-verification?token=test-token",
			verified:       true,
			expectedStatus: http.StatusOK,
			expectedResult: "SUCCESS",
		},
		{
			id:             "unknown or expired token",
			url:            "/users/email-verification?token=test-token",
			verified:       false,
			expectedStatus: http.StatusOK,
			expectedResult: "ERROR",
		},
		{
			id:             "missing token",
			url:            "/users/email-verification",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "service error",
			url:            "/users/email-verification?token=test-token",
			serviceErr:     errors.New("test error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		stub := &stubService{verified: testcase.verified, err: testcase.serviceErr}
		handler := New(stub)

		request := httptest.NewRequest(http.MethodGet, testcase.url, nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		require.Equal(t, testcase.expectedStatus, recorder.Result().StatusCode, testcase.id)
		if testcase.expectedResult == "" {
			continue
		}
		body := struct {
			OperationName   string `json:"operationName"`
			OperationResult string `json:"operationResult"`
		}{}
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body), testcase.id)
		assert.Equal(t, "VERIFY_EMAIL", body.OperationName, testcase.id)
		assert.Equal(t, testcase.expectedResult, body.OperationResult, testcase.id)
	}
}
