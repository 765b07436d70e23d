package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authhttp "emile-auto/internal/auth/adapter/http"
	"emile-auto/internal/auth/domain/repository"
	"emile-auto/internal/auth/usecase"
	sharederrors "emile-auto/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock usecase
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Login(ctx context.Context, req usecase.LoginRequest) (*usecase.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginResponse), args.Error(1)
}

func (m *mockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Claims), args.Error(1)
}

type AuthHTTPTestSuite struct {
	suite.Suite
	app         *fiber.App
	mockUsecase *mockAuthUsecase
}

func (suite *AuthHTTPTestSuite) SetupTest() {
	suite.mockUsecase = &mockAuthUsecase{}
	suite.app = fiber.New()

	handler := authhttp.NewAuthHTTPHandler(suite.mockUsecase)
	middleware := authhttp.NewAuthMiddleware(suite.mockUsecase)
	handler.SetupAuthRoutes(suite.app.Group("/api"), middleware)
}

func (suite *AuthHTTPTestSuite) postLogin(body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(suite.T(), err)

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.app.Test(req)
	require.NoError(suite.T(), err)
	return resp
}

func (suite *AuthHTTPTestSuite) TestLogin_Success() {
	suite.mockUsecase.On("Login", mock.Anything, usecase.LoginRequest{
		Email:    "admin@emile-auto.test",
		Password: "s3cret",
	}).Return(&usecase.LoginResponse{Token: "signed-token"}, nil)

	resp := suite.postLogin(map[string]string{
		"email":    "admin@emile-auto.test",
		"password": "s3cret",
	})

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "signed-token", body["token"])
}

func (suite *AuthHTTPTestSuite) TestLogin_InvalidCredentials() {
	suite.mockUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, sharederrors.ErrInvalidCredentials)

	resp := suite.postLogin(map[string]string{
		"email":    "admin@emile-auto.test",
		"password": "wrong",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "Invalid credentials", body["message"])
}

func (suite *AuthHTTPTestSuite) TestLogin_MalformedBody() {
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.app.Test(req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	suite.mockUsecase.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything)
}

func TestAuthHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHTTPTestSuite))
}
