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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: utils.NewValidator()}
}

// CreateOrder checks out the caller's cart as a cash-on-delivery order.
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", slog.String("orderId", order.OrderID))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		code := r.PathValue("orderId")
		logger = logger.With(slog.String("orderId", code))

		order, err := h.orderService.GetOrderByCode(r.Context(), claims, code)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListMyOrders is the customer's order history, newest first.
func (h *OrderHandler) ListMyOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		page, pageSize := pageParams(r)

		orders, total, err := h.orderService.ListCustomerOrders(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderHistoryResponse{
			Orders: orders,
			Total:  total,
			Page:   max(page, 1),
			Size:   len(orders),
		})
	}
}

func (h *OrderHandler) ListShopOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		orders, err := h.orderService.ListShopOrders(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list shop orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// ListAllOrders is the admin view, optionally filtered with ?status=.
func (h *OrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := pageParams(r)
		status := models.OrderStatus(r.URL.Query().Get("status"))

		orders, total, err := h.orderService.ListAllOrders(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewPage(orders, total, page))
	}
}

// UpdateStatus serves both the shop owner and admin routes; the service decides who may move the order.
func (h *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		code := r.PathValue("orderId")
		logger = logger.With(slog.String("orderId", code))

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order status input")
			return
		}

		order, err := h.orderService.TransitionOrder(r.Context(), claims, code, &req)
		if err != nil {
			logger.Warn("Order status update failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) MarkCommissionPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		code := r.PathValue("orderId")

		var req models.CommissionPaidRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid commission input")
			return
		}

		order, err := h.orderService.MarkCommissionPaid(r.Context(), claims, code, *req.Paid)
		if err != nil {
			logger.Warn("Commission update failed", slog.String("orderId", code), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Commission settlement updated", slog.String("orderId", code), slog.Bool("paid", order.CommissionPaid))
		response.Success(w, http.StatusOK, order)
	}
}
