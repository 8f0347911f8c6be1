package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AdminHandler struct {
	shopService         service.ShopService
	analyticsService    service.AnalyticsService
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewAdminHandler(shopService service.ShopService, analyticsService service.AnalyticsService, notificationService service.NotificationService) *AdminHandler {
	return &AdminHandler{
		shopService:         shopService,
		analyticsService:    analyticsService,
		notificationService: notificationService,
		validator:           utils.NewValidator(),
	}
}

// ListShops returns every shop, optionally filtered with ?status=.
func (h *AdminHandler) ListShops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shops, err := h.shopService.ListShops(r.Context(), models.ShopStatus(r.URL.Query().Get("status")))
		if err != nil {
			logger.Error("Failed to list shops", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shops)
	}
}

func (h *AdminHandler) ApproveShop() http.HandlerFunc {
	return h.changeStatus("approved", h.shopService.Approve)
}

func (h *AdminHandler) SuspendShop() http.HandlerFunc {
	return h.changeStatus("suspended", h.shopService.Suspend)
}

func (h *AdminHandler) ReactivateShop() http.HandlerFunc {
	return h.changeStatus("reactivated", h.shopService.Reactivate)
}

func (h *AdminHandler) changeStatus(action string, change func(ctx context.Context, id uuid.UUID) (*models.Shop, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		shop, err := change(r.Context(), id)
		if err != nil {
			logger.Warn("Shop status change failed", slog.String("shopId", id.String()), slog.String("action", action), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop "+action, slog.String("shopId", id.String()))
		response.Success(w, http.StatusOK, shop)
	}
}

func (h *AdminHandler) UpdateCommission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCommissionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid commission rate input")
			return
		}

		shop, err := h.shopService.UpdateCommissionRate(r.Context(), id, *req.CommissionRate)
		if err != nil {
			logger.Warn("Commission rate update failed", slog.String("shopId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shop)
	}
}

func (h *AdminHandler) DeleteShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.shopService.DeleteShop(r.Context(), id); err != nil {
			logger.Warn("Shop deletion failed", slog.String("shopId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop deleted", slog.String("shopId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": id.String()})
	}
}

func (h *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.analyticsService.PlatformStats(r.Context())
		if err != nil {
			logger.Error("Failed to compute platform stats", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

func (h *AdminHandler) Analytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		analytics, err := h.analyticsService.AdminAnalytics(r.Context())
		if err != nil {
			logger.Error("Failed to compute admin analytics", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, analytics)
	}
}

func (h *AdminHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := pageParams(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewPage(notifications, total, page))
	}
}
