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

type ShopHandler struct {
	shopService      service.ShopService
	productService   service.ProductService
	analyticsService service.AnalyticsService
	validator        *validator.Validate
}

func NewShopHandler(shopService service.ShopService, productService service.ProductService, analyticsService service.AnalyticsService) *ShopHandler {
	return &ShopHandler{
		shopService:      shopService,
		productService:   productService,
		analyticsService: analyticsService,
		validator:        utils.NewValidator(),
	}
}

// ListShops is the public catalog of active shops, optionally narrowed with ?category=.
func (h *ShopHandler) ListShops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shops, err := h.shopService.ListActiveShops(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			logger.Error("Failed to list shops", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shops)
	}
}

func (h *ShopHandler) GetShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		shop, err := h.shopService.GetShop(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get shop", slog.String("shopId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shop)
	}
}

func (h *ShopHandler) ListShopProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.productService.ListShopProducts(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to list shop products", slog.String("shopId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ShopHandler) RegisterShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateShopRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid shop registration input")
			return
		}

		shop, err := h.shopService.RegisterShop(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Shop registration failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop registered, awaiting approval", slog.String("shopId", shop.ID.String()))
		response.Success(w, http.StatusCreated, shop)
	}
}

func (h *ShopHandler) GetMyShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		shop, err := h.shopService.GetMyShop(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to get own shop", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shop)
	}
}

func (h *ShopHandler) UpdateMyShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.UpdateShopRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid shop settings input")
			return
		}

		shop, err := h.shopService.UpdateSettings(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Shop settings update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shop)
	}
}

func (h *ShopHandler) SetOpen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.SetShopOpenRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid open toggle input")
			return
		}

		shop, err := h.shopService.ToggleOpen(r.Context(), claims.UserID, *req.IsOpen)
		if err != nil {
			logger.Warn("Open toggle failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop open state changed", slog.Bool("isOpen", shop.IsOpen))
		response.Success(w, http.StatusOK, shop)
	}
}

func (h *ShopHandler) Analytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		analytics, err := h.analyticsService.ShopAnalytics(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to compute shop analytics", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, analytics)
	}
}
