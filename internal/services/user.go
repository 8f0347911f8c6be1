package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListCustomers(ctx context.Context, page, size int) ([]*models.User, int, error)
}

type userService struct {
	repo        repository.UserRepository
	shopRepo    repository.ShopRepository
	rateLimiter repository.RateLimitRepository
	jwtKey      []byte
	tokenTTL    time.Duration
	now         func() time.Time
}

func NewUserService(repo repository.UserRepository, shopRepo repository.ShopRepository, rateLimiter repository.RateLimitRepository, jwtKey []byte, tokenTTL time.Duration) UserService {

	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &userService{
		repo:        repo,
		shopRepo:    shopRepo,
		rateLimiter: rateLimiter,
		jwtKey:      jwtKey,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Register creates customers and shop owners. Admin accounts are provisioned out of band.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !isNotFound(err) {
		return nil, errors.DatabaseError("Failed to check existing user").WithError(err)
	}

	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	if role != models.RoleCustomer && role != models.RoleShopOwner {
		return nil, errors.ValidationError("Role must be customer or shop_owner")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	addresses := make([]string, 0, len(req.Addresses))
	for _, address := range req.Addresses {
		if clean := utils.Sanitize(address); clean != "" {
			addresses = append(addresses, clean)
		}
	}

	user := &models.User{
		Name:      utils.Sanitize(req.Name),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		Password:  string(hashedPassword),
		Role:      role,
		Addresses: addresses,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already registered").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	if user.Role == models.RoleShopOwner {
		shop, err := s.shopRepo.GetShopByOwner(ctx, user.ID)
		switch {
		case err == nil:
			claims.ShopID = shop.ID
		case !isNotFound(err):
			return nil, errors.DatabaseError("Failed to fetch shop").WithError(err)
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) ListCustomers(ctx context.Context, page, size int) ([]*models.User, int, error) {

	page, size = normalizePage(page, size)

	users, total, err := s.repo.ListCustomers(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch customers").WithError(err)
	}

	return users, total, nil
}
