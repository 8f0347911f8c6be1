package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-secret")

func setupUserServiceTest(t *testing.T) (service.UserService, *repoMocks.UserRepository, *repoMocks.ShopRepository, *repoMocks.RateLimitRepository) {
	userRepo := repoMocks.NewUserRepository(t)
	shopRepo := repoMocks.NewShopRepository(t)
	rateLimiter := repoMocks.NewRateLimitRepository(t)

	return service.NewUserService(userRepo, shopRepo, rateLimiter, testJWTKey, 2*time.Hour), userRepo, shopRepo, rateLimiter
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func parseClaims(t *testing.T, token string) *models.Claims {
	t.Helper()
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return testJWTKey, nil })
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestUserService_Register(t *testing.T) {
	t.Run("Success - Defaults to customer", func(t *testing.T) {
		svc, userRepo, _, _ := setupUserServiceTest(t)

		userRepo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(nil, repository.ErrNotFound).Once()
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
		})).Return(nil).Once()

		user, err := svc.Register(context.Background(), &models.RegisterRequest{
			Email:     " Asha@Example.com ",
			Password:  "secret123",
			Name:      "Asha",
			Phone:     "9876543210",
			Addresses: []string{"12 MG Road", "   "},
		})

		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.Equal(t, []string{"12 MG Road"}, user.Addresses)
	})

	t.Run("Failure - Email taken", func(t *testing.T) {
		svc, userRepo, _, _ := setupUserServiceTest(t)

		userRepo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(&models.User{ID: uuid.New()}, nil).Once()

		_, err := svc.Register(context.Background(), &models.RegisterRequest{Email: "asha@example.com", Password: "secret123"})

		assertAppError(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Admin self registration", func(t *testing.T) {
		svc, userRepo, _, _ := setupUserServiceTest(t)

		userRepo.On("GetUserByEmail", mock.Anything, "boss@example.com").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Register(context.Background(), &models.RegisterRequest{Email: "boss@example.com", Password: "secret123", Role: models.RoleAdmin})

		assertAppError(t, err, appErrors.ErrCodeValidation)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Run("Success - Shop owner token carries the shop", func(t *testing.T) {
		svc, userRepo, shopRepo, rateLimiter := setupUserServiceTest(t)
		owner := &models.User{ID: uuid.New(), Email: "owner@example.com", Password: hashed(t, "secret123"), Role: models.RoleShopOwner}
		shop := activeShop("Sharma Kirana")

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, "owner@example.com").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, "owner@example.com").Return(owner, nil).Once()
		shopRepo.On("GetShopByOwner", mock.Anything, owner.ID).Return(shop, nil).Once()
		rateLimiter.On("ResetLoginAttempts", mock.Anything, "owner@example.com").Return(nil).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "Owner@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 7200, resp.ExpiresIn)

		claims := parseClaims(t, resp.Token)
		assert.Equal(t, owner.ID, claims.UserID)
		assert.Equal(t, models.RoleShopOwner, claims.Role)
		assert.Equal(t, shop.ID, claims.ShopID)
	})

	t.Run("Success - Owner without a shop yet", func(t *testing.T) {
		svc, userRepo, shopRepo, rateLimiter := setupUserServiceTest(t)
		owner := &models.User{ID: uuid.New(), Email: "new@example.com", Password: hashed(t, "secret123"), Role: models.RoleShopOwner}

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, owner.Email).Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, owner.Email).Return(owner, nil).Once()
		shopRepo.On("GetShopByOwner", mock.Anything, owner.ID).Return(nil, repository.ErrNotFound).Once()
		rateLimiter.On("ResetLoginAttempts", mock.Anything, owner.Email).Return(errors.New("redis down")).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: owner.Email, Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, parseClaims(t, resp.Token).ShopID)
	})

	t.Run("Failure - Wrong password", func(t *testing.T) {
		svc, userRepo, _, rateLimiter := setupUserServiceTest(t)
		user := &models.User{ID: uuid.New(), Email: "asha@example.com", Password: hashed(t, "secret123"), Role: models.RoleCustomer}

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, user.Email).Return(true, 3, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: user.Email, Password: "nope"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 3, resp.RemainingTries)
		assert.Empty(t, resp.Token)
	})

	t.Run("Failure - Unknown email", func(t *testing.T) {
		svc, userRepo, _, rateLimiter := setupUserServiceTest(t)

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, "ghost@example.com").Return(true, 4, 0, nil).Once()
		userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ghost@example.com", Password: "x"})

		require.NoError(t, err)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Failure - Rate limited", func(t *testing.T) {
		svc, userRepo, _, rateLimiter := setupUserServiceTest(t)

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, "asha@example.com").Return(false, 0, 12, nil).Once()

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "x"})

		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 12, resp.RetryAfter)
		userRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rate limiter unavailable", func(t *testing.T) {
		svc, _, _, rateLimiter := setupUserServiceTest(t)

		rateLimiter.On("CheckLoginRateLimit", mock.Anything, "asha@example.com").Return(false, 0, 0, errors.New("redis down")).Once()

		_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "asha@example.com", Password: "x"})

		assertAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})
}

func TestUserService_GetUserByID(t *testing.T) {
	svc, userRepo, _, _ := setupUserServiceTest(t)
	id := uuid.New()

	userRepo.On("GetUserById", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.GetUserByID(context.Background(), id)

	assertAppError(t, err, appErrors.ErrCodeNotFound)
}
