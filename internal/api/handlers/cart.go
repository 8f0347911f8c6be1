package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// CartView is the cart plus its derived totals.
type CartView struct {
	*cart.Cart
	Subtotal  float64 `json:"subtotal"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

func newCartView(c *cart.Cart) CartView {
	return CartView{Cart: c, Subtotal: c.Subtotal(), Total: c.Total(), ItemCount: c.ItemCount()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		c, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, newCartView(c))
	}
}

// AddItem answers 409 when the product belongs to a different shop than the cart.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return h.add(false)
}

// ReplaceCart empties the cart and adds the item, switching shops.
func (h *CartHandler) ReplaceCart() http.HandlerFunc {
	return h.add(true)
}

func (h *CartHandler) add(replace bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart item input")
			return
		}

		var (
			c   *cart.Cart
			err error
		)

		if replace {
			c, err = h.cartService.ClearAndAdd(r.Context(), claims.UserID, &req)
		} else {
			c, err = h.cartService.AddItem(r.Context(), claims.UserID, &req)
		}

		if err != nil {
			logger.Warn("Failed to add cart item", slog.String("productId", req.ProductID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item added", slog.String("productId", req.ProductID.String()), slog.Bool("replaced", replace))
		response.Success(w, http.StatusOK, newCartView(c))
	}
}

func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SetQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input")
			return
		}

		c, err := h.cartService.SetQuantity(r.Context(), claims.UserID, productID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, newCartView(c))
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		c, err := h.cartService.RemoveItem(r.Context(), claims.UserID, productID)
		if err != nil {
			logger.Warn("Failed to remove cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, newCartView(c))
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, newCartView(cart.New()))
	}
}
