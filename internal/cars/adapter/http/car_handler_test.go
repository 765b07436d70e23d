package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	carshttp "emile-auto/internal/cars/adapter/http"
	"emile-auto/internal/cars/domain/model"
	"emile-auto/internal/cars/domain/repository"
	"emile-auto/internal/shared/contextkeys"
	sharederrors "emile-auto/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock usecase
type mockCarUsecase struct {
	mock.Mock
}

func (m *mockCarUsecase) List(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *mockCarUsecase) GetByID(ctx context.Context, id string) (*model.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *mockCarUsecase) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *mockCarUsecase) Replace(ctx context.Context, id string, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, id, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *mockCarUsecase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCarUsecase) IncrementViews(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type CarHTTPTestSuite struct {
	suite.Suite
	app         *fiber.App
	mockUsecase *mockCarUsecase
}

func (suite *CarHTTPTestSuite) SetupTest() {
	suite.mockUsecase = &mockCarUsecase{}
	suite.app = fiber.New()

	handler := carshttp.NewCarHTTPHandler(suite.mockUsecase)
	handler.SetupCarRoutes(suite.app.Group("/api"))
}

func (suite *CarHTTPTestSuite) request(method, path string, body interface{}) *http.Response {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := suite.app.Test(req)
	require.NoError(suite.T(), err)
	return resp
}

func (suite *CarHTTPTestSuite) TestList_Empty() {
	suite.mockUsecase.On("List", mock.Anything).Return([]model.Car{}, nil)

	resp := suite.request("GET", "/api/cars", nil)

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), "[]", string(raw))
}

func (suite *CarHTTPTestSuite) TestList_RequestIDReachesUsecaseContext() {
	var captured context.Context
	suite.mockUsecase.On("List", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(context.Context)
		}).
		Return([]model.Car{}, nil)

	// Same wiring as main: the id is stored on the user context, and the
	// handlers must hand that context to the usecases.
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(context.WithValue(c.UserContext(), contextkeys.RequestIDKey, "req-123"))
		return c.Next()
	})
	handler := carshttp.NewCarHTTPHandler(suite.mockUsecase)
	handler.SetupCarRoutes(app.Group("/api"))

	req := httptest.NewRequest("GET", "/api/cars", nil)
	resp, err := app.Test(req)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	require.NotNil(suite.T(), captured)
	assert.Equal(suite.T(), "req-123", captured.Value(contextkeys.RequestIDKey))
}

func (suite *CarHTTPTestSuite) TestList_StoreFailure() {
	suite.mockUsecase.On("List", mock.Anything).
		Return(nil, sharederrors.NewInfrastructureError("store down"))

	resp := suite.request("GET", "/api/cars", nil)
	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestGetByID_Found() {
	oid := primitive.NewObjectID()
	suite.mockUsecase.On("GetByID", mock.Anything, oid.Hex()).
		Return(&model.Car{ID: oid, Make: "Toyota", Views: 1, CreatedAt: time.Now().UTC()}, nil)

	resp := suite.request("GET", "/api/cars/"+oid.Hex(), nil)

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "Toyota", body["make"])
}

func (suite *CarHTTPTestSuite) TestGetByID_Absent() {
	suite.mockUsecase.On("GetByID", mock.Anything, mock.Anything).
		Return(nil, sharederrors.NewNotFoundError("car"))

	resp := suite.request("GET", "/api/cars/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestGetByID_MalformedIDIsServerError() {
	suite.mockUsecase.On("GetByID", mock.Anything, "garbage").
		Return(nil, repository.ErrInvalidID)

	resp := suite.request("GET", "/api/cars/garbage", nil)
	assert.Equal(suite.T(), http.StatusInternalServerError, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestCreate_Success() {
	oid := primitive.NewObjectID()
	suite.mockUsecase.On("Create", mock.Anything, mock.Anything).
		Return(&model.Car{ID: oid, Make: "Toyota", Price: 15000, Views: 0, CreatedAt: time.Now().UTC()}, nil)

	resp := suite.request("POST", "/api/cars/add", map[string]interface{}{
		"make":  "Toyota",
		"price": 15000,
	})

	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), float64(0), body["views"])
	assert.Equal(suite.T(), oid.Hex(), body["_id"])
	assert.NotEmpty(suite.T(), body["createdAt"])
}

func (suite *CarHTTPTestSuite) TestCreate_ValidationMessagePassedThrough() {
	suite.mockUsecase.On("Create", mock.Anything, mock.Anything).
		Return(nil, sharederrors.NewValidationError("make is required"))

	resp := suite.request("POST", "/api/cars/add", map[string]interface{}{"price": 1})

	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "make is required", body["message"])
}

func (suite *CarHTTPTestSuite) TestReplace_Success() {
	oid := primitive.NewObjectID()
	suite.mockUsecase.On("Replace", mock.Anything, oid.Hex(), mock.Anything).
		Return(&model.Car{ID: oid, Make: "Peugeot", Price: 9000}, nil)

	resp := suite.request("PUT", "/api/cars/"+oid.Hex(), map[string]interface{}{
		"make":  "Peugeot",
		"price": 9000,
	})

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestReplace_MalformedIDIsClientError() {
	suite.mockUsecase.On("Replace", mock.Anything, "garbage", mock.Anything).
		Return(nil, repository.ErrInvalidID)

	resp := suite.request("PUT", "/api/cars/garbage", map[string]interface{}{"make": "Peugeot"})
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestReplace_Absent() {
	suite.mockUsecase.On("Replace", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sharederrors.NewNotFoundError("car"))

	resp := suite.request("PUT", "/api/cars/"+primitive.NewObjectID().Hex(), map[string]interface{}{"make": "Peugeot"})
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
}

func (suite *CarHTTPTestSuite) TestDelete_Success() {
	suite.mockUsecase.On("Delete", mock.Anything, mock.Anything).Return(nil)

	resp := suite.request("DELETE", "/api/cars/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), "Car removed", body["message"])
}

func (suite *CarHTTPTestSuite) TestIncrementViews_ReturnsNewCount() {
	oid := primitive.NewObjectID()
	suite.mockUsecase.On("IncrementViews", mock.Anything, oid.Hex()).Return(int64(1), nil)

	resp := suite.request("PUT", "/api/cars/view/"+oid.Hex(), nil)

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(suite.T(), int64(1), body["views"])
}

func (suite *CarHTTPTestSuite) TestIncrementViews_Absent() {
	suite.mockUsecase.On("IncrementViews", mock.Anything, mock.Anything).
		Return(int64(0), sharederrors.NewNotFoundError("car"))

	resp := suite.request("PUT", "/api/cars/view/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, resp.StatusCode)
}

func TestCarHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(CarHTTPTestSuite))
}
