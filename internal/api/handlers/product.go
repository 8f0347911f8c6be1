package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const imageFormField = "image"

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewProductHandler(productService service.ProductService, maxUploadMB int64) *ProductHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}

	return &ProductHandler{
		productService: productService,
		validator:      utils.NewValidator(),
		maxUploadBytes: maxUploadMB << 20,
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) ListMyProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		products, err := h.productService.ListMyProducts(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to list own products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product update input")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), claims.UserID, productID, &req)
		if err != nil {
			logger.Warn("Failed to update product", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), claims.UserID, productID); err != nil {
			logger.Warn("Failed to delete product", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", productID.String()))
		response.Success(w, http.StatusOK, map[string]string{"id": productID.String()})
	}
}

func (h *ProductHandler) SetStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.SetStockRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid stock input")
			return
		}

		product, err := h.productService.ToggleStock(r.Context(), claims.UserID, productID, *req.InStock)
		if err != nil {
			logger.Warn("Failed to change stock", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UploadImage accepts a multipart form with the picture under the "image" field.
func (h *ProductHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		productID, err := utils.PathUUID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			logger.Warn("Invalid image upload", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Image is missing or too large").WithError(err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(imageFormField)
		if err != nil {
			response.Error(w, errors.BadRequestError("Image is missing or too large").WithError(err))
			return
		}
		defer file.Close()

		product, err := h.productService.UploadImage(r.Context(), claims.UserID, productID, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			logger.Warn("Image upload failed", slog.String("productId", productID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product image uploaded", slog.String("productId", productID.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// Catalog groups same-named products across shops for the customer home screen.
func (h *ProductHandler) Catalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		grouped, err := h.productService.ListGroupedProducts(r.Context())
		if err != nil {
			logger.Error("Failed to build catalog", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, grouped)
	}
}

func (h *ProductHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.productService.SearchProducts(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			logger.Error("Product search failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// Offers lists every shop selling a product with the given ?name=.
func (h *ProductHandler) Offers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			response.Error(w, errors.BadRequestError("Product name is required"))
			return
		}

		offers, err := h.productService.ShopsSellingProduct(r.Context(), name)
		if err != nil {
			logger.Error("Failed to list offers", slog.String("product", name), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, offers)
	}
}
