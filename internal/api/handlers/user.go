package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid register input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()), slog.String("role", string(user.Role)))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login answers 401 for bad credentials and 429 once the attempt window is exhausted.
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("status", status))
			response.WriteJson(w, status, resp)
			return
		}

		logger.Info("User logged in")
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Profile lookup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := pageParams(r)

		customers, total, err := h.userService.ListCustomers(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list customers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewPage(customers, total, page))
	}
}
