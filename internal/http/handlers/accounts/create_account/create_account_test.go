package createaccount

import (
	"accounthub/internal/core/domain/account"
	c "accounthub/internal/core/domain/common"
	service "accounthub/internal/core/services/create_account"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	EMAIL     = "test@test.test"
	PUBLIC_ID = "test-public-id-of-30-chars-abc"
	TOKEN     = "test-verification-token"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Account = account.Account{
		ID:                account.ID(1),
		PublicID:          PUBLIC_ID,
		Email:             input.Email,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		VerificationToken: c.NewOptional(account.VerificationToken(TOKEN), true),
		CreatedAt:         time.Now().UTC(),
	}
	return result, nil
}

func TestCreateAccountHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id: "success with addresses",
			body: `{
				"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password",
				"addresses": [
					{"type": "SHIPPING", "city": "Berlin", "country": "Germany", "postalCode": "10115", "streetName": "Torstr. 1"}
				]
			}`,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email", "firstName": "Test", "lastName": "Testov", "password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing first name",
			body:           `{"email": "test@test.test", "lastName": "Testov", "password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "12345"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid address type",
			body:           `{"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password", "addresses": [{"type": "OTHER", "city": "Berlin", "country": "Germany", "postalCode": "10115", "streetName": "Torstr. 1"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email already exists",
			body:           `{"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password"}`,
			serviceErr:     account.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		stub := &stubService{err: testcase.serviceErr}
		handler := New(stub, false)

		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(testcase.body))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, testcase.expectedStatus, recorder.Result().StatusCode, testcase.id)
	}
}

func TestCreateAccountHandlerRendersAccount(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, false)

	request := httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(`{"email": "TEST@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Result().StatusCode)
	require.NotNil(t, stub.input)
	assert.Equal(t, EMAIL, string(stub.input.Email))

	body := struct {
		PublicID  string `json:"publicId"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
	}{}
	require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, PUBLIC_ID, body.PublicID)
	assert.Equal(t, EMAIL, body.Email)
	assert.Equal(t, "Test", body.FirstName)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.Empty(t, recorder.Header().Get("x-test-verification-token"))
}

func TestCreateAccountHandlerTestMode(t *testing.T) {
	stub := &stubService{}
	handler := New(stub, true)

	request := httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(`{"email": "test@test.test", "firstName": "Test", "lastName": "Testov", "password": "test-password"}`),
	)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Result().StatusCode)
	assert.Equal(t, TOKEN, recorder.Header().Get("x-test-verification-token"))
}
