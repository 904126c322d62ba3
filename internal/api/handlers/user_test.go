package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-manager/internal/api/handlers"
	appErrors "inventory-manager/internal/errors"
	"inventory-manager/internal/models"
	"inventory-manager/internal/services/mocks"
	"inventory-manager/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		reqBody := models.RegisterRequest{Email: "user@example.com", Password: "secret123", Name: "Test User"}
		bodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Register", mock.Anything, &reqBody).
			Return(&models.User{ID: uuid.New(), Email: reqBody.Email, Name: reqBody.Name}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Invalid Input - bad email", func(t *testing.T) {
		// Arrange
		// fresh mock: AssertNotCalled must not see calls from sibling subtests
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		reqBody := models.RegisterRequest{Email: "not-an-email", Password: "secret123", Name: "Test User"}
		bodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure - duplicate email", func(t *testing.T) {
		// Arrange
		reqBody := models.RegisterRequest{Email: "dup@example.com", Password: "secret123", Name: "Dup"}
		bodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Register", mock.Anything, &reqBody).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		mockUserService.AssertExpectations(t)
	})
}

func TestLoginHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	reqBody := models.LoginRequest{Email: "user@example.com", Password: "secret123"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.LoginResponse{Success: true, Token: "token", ExpiresIn: 86400}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "token")
		mockUserService.AssertExpectations(t)
	})

	t.Run("Rejected - wrong credentials", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.LoginResponse{Success: false, Message: "Invalid email or password"}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Rejected - rate limited", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(&models.LoginResponse{Success: false, RetryAfter: 120}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewReader(bodyBytes), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		mockUserService.AssertExpectations(t)
	})
}

func TestProfileHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockUserService.On("GetUserByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Email: "user@example.com"}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil)

		// Act
		userHandler.Profile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - missing session", func(t *testing.T) {
		// Arrange
		// fresh mock: AssertNotCalled must not see calls from sibling subtests
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)

		// Act
		userHandler.Profile().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}
