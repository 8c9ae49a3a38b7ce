package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/cymbal-sports-api/internal/errors"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/models"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/services/mocks"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateUser(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		req := &models.CreateUserRequest{Username: "casey", Password: "secret"}
		users.On("CreateUser", mock.Anything, req).
			Return(&models.CreateUserResponse{Message: "User created successfully", Username: "casey"}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.CreateUser().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/users", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		got := decodeData[models.CreateUserResponse](t, rr)
		assert.Equal(t, "casey", got.Username)
		users.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate user", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		req := &models.CreateUserRequest{Username: "casey", Password: "secret"}
		users.On("CreateUser", mock.Anything, req).Return(nil, appErrors.BadRequestError("User already exists")).Once()
		rr := httptest.NewRecorder()

		// Act
		h.CreateUser().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/users", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "User already exists", decodeEnvelope(t, rr).Error.Message)
	})

	t.Run("Invalid Input - Short username", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		body := jsonBody(t, models.CreateUserRequest{Username: "ab", Password: "secret"})
		rr := httptest.NewRecorder()

		// Act
		h.CreateUser().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/users", body, nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		assert.Contains(t, env.Error.Details, "Field Username must be at least 3 characters")
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	req := &models.LoginRequest{Username: "casey", Password: "secret"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		users.On("Login", mock.Anything, req).
			Return(&models.LoginResponse{Success: true, Token: "signed.jwt.token", ExpiresIn: 86400}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Login().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/login", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		got := decodeData[models.LoginResponse](t, rr)
		assert.Equal(t, "signed.jwt.token", got.Token)
		assert.Equal(t, 86400, got.ExpiresIn)
	})

	t.Run("Failure - Invalid credentials", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		users.On("Login", mock.Anything, req).
			Return(&models.LoginResponse{Message: "Invalid username or password", RemainingTries: 2}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Login().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/login", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Invalid username or password", env.Error.Message)
		assert.Equal(t, []string{"2 attempts remaining"}, env.Error.Details)
	})

	t.Run("Failure - Throttled", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		users.On("Login", mock.Anything, req).
			Return(&models.LoginResponse{Message: "Too many login attempts", RetryAfter: 40}, nil).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Login().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/login", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "40", rr.Header().Get("Retry-After"))
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, decodeEnvelope(t, rr).Error.Code)
	})

	t.Run("Failure - Rate limiter down", func(t *testing.T) {
		// Arrange
		users := new(mocks.UserService)
		h := handlers.NewUserHandler(users)
		users.On("Login", mock.Anything, req).Return(nil, appErrors.ThirdPartyError("Rate limiter unavailable")).Once()
		rr := httptest.NewRecorder()

		// Act
		h.Login().ServeHTTP(rr, testutils.NewRequest(http.MethodPost, "/api/login", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
