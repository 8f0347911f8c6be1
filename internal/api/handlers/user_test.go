package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/services/mocks"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserTest() (*mocks.UserService, *handlers.UserHandler) {
	mockUserService := new(mocks.UserService)
	return mockUserService, handlers.NewUserHandler(mockUserService)
}

func TestRegisterUser(t *testing.T) {
	validReq := models.RegisterRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Name:     "Asha",
		Phone:    "9876543210",
		Role:     models.RoleShopOwner,
	}

	t.Run("Success", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/register", jsonBody(t, validReq), nil)
		rr := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, &validReq).
			Return(&models.User{ID: uuid.New(), Name: "Asha", Email: validReq.Email, Role: models.RoleShopOwner}, nil).Once()

		userHandler.Register()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var user models.User
		decodeResponse(t, rr, &user)
		assert.Equal(t, models.RoleShopOwner, user.Role)
		assert.NotContains(t, rr.Body.String(), "secret123")

		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Admin Role", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest()
		adminReq := validReq
		adminReq.Role = models.RoleAdmin
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/register", jsonBody(t, adminReq), nil)
		rr := httptest.NewRecorder()

		userHandler.Register()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Email Taken", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/register", jsonBody(t, validReq), nil)
		rr := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		userHandler.Register()(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockUserService.AssertExpectations(t)
	})
}

func TestLoginUser(t *testing.T) {
	loginReq := models.LoginRequest{Email: "asha@example.com", Password: "secret123"}

	tests := []struct {
		name     string
		result   *models.LoginResponse
		expected int
	}{
		{
			name:     "Success",
			result:   &models.LoginResponse{Success: true, Token: "jwt-token", ExpiresIn: 86400},
			expected: http.StatusOK,
		},
		{
			name:     "Wrong Password",
			result:   &models.LoginResponse{Success: false, Message: "Invalid email or password", RemainingTries: 4},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "Rate Limited",
			result:   &models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 12},
			expected: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserService, userHandler := setupUserTest()
			req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/login", jsonBody(t, loginReq), nil)
			rr := httptest.NewRecorder()

			mockUserService.On("Login", mock.Anything, &loginReq).Return(tt.result, nil).Once()

			userHandler.Login()(rr, req)

			assert.Equal(t, tt.expected, rr.Code)
			mockUserService.AssertExpectations(t)
		})
	}

	t.Run("Rejected Body Carries Retry Hint", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/login", jsonBody(t, loginReq), nil)
		rr := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, RetryAfter: 12}, nil).Once()

		userHandler.Login()(rr, req)

		var body models.LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, 12, body.RetryAfter)
	})
}

func TestProfile(t *testing.T) {
	mockUserService, userHandler := setupUserTest()
	userID := uuid.New()
	req := testutils.CreateTestRequestWithContext(http.MethodGet, "/users/me", nil, userID, nil)
	rr := httptest.NewRecorder()

	mockUserService.On("GetUserByID", mock.Anything, userID).Return(nil, appErrors.NotFoundError("User not found")).Once()

	userHandler.Profile()(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockUserService.AssertExpectations(t)
}

func TestListCustomers(t *testing.T) {
	mockUserService, userHandler := setupUserTest()
	req := testutils.CreateTestRequestWithClaims(http.MethodGet, "/admin/customers?page=1&pageSize=2", nil, testutils.AdminClaims(uuid.New()), nil)
	rr := httptest.NewRecorder()

	customers := []*models.User{{ID: uuid.New(), Name: "A"}, {ID: uuid.New(), Name: "B"}}
	mockUserService.On("ListCustomers", mock.Anything, 1, 2).Return(customers, 5, nil).Once()

	userHandler.ListCustomers()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var page models.Page[*models.User]
	decodeResponse(t, rr, &page)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.PageSize)

	mockUserService.AssertExpectations(t)
}
