package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/pkg/objectstore"
	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

type ProductService interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error
	ToggleStock(ctx context.Context, ownerID, productID uuid.UUID, inStock bool) (*models.Product, error)
	UploadImage(ctx context.Context, ownerID, productID uuid.UUID, filename, contentType string, body io.Reader) (*models.Product, error)
	ListMyProducts(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
	ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]models.Product, error)
	ListGroupedProducts(ctx context.Context) ([]models.GroupedProduct, error)
	SearchProducts(ctx context.Context, query string) ([]models.ListedProduct, error)
	ShopsSellingProduct(ctx context.Context, name string) ([]models.ShopOffer, error)
}

type productService struct {
	repo     repository.ProductRepository
	shopRepo repository.ShopRepository
	images   objectstore.Store
	now      func() time.Time
}

// NewProductService accepts a nil image store; uploads are then refused.
func NewProductService(repo repository.ProductRepository, shopRepo repository.ShopRepository, images objectstore.Store) ProductService {
	return &productService{repo: repo, shopRepo: shopRepo, images: images, now: time.Now}
}

func (s *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	shop, err := s.shopRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if err := validateOffer(req.Price, req.OfferPrice); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		ShopID:      shop.ID,
		Name:        utils.Sanitize(req.Name),
		Description: utils.Sanitize(req.Description),
		Category:    strings.ToLower(utils.Sanitize(req.Category)),
		Unit:        utils.Sanitize(req.Unit),
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		InStock:     inStock,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = utils.Sanitize(*req.Name)
	}
	if req.Description != nil {
		product.Description = utils.Sanitize(*req.Description)
	}
	if req.Category != nil {
		product.Category = strings.ToLower(utils.Sanitize(*req.Category))
	}
	if req.Unit != nil {
		product.Unit = utils.Sanitize(*req.Unit)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	// an explicit zero clears the offer
	if req.OfferPrice != nil {
		if *req.OfferPrice == 0 {
			product.OfferPrice = nil
		} else {
			offer := *req.OfferPrice
			product.OfferPrice = &offer
		}
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := validateOffer(product.Price, product.OfferPrice); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, productWriteError(err, "Failed to update product")
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {

	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return productWriteError(err, "Failed to delete product")
	}

	s.deleteImage(ctx, product.ImagePath)

	return nil
}

func (s *productService) ToggleStock(ctx context.Context, ownerID, productID uuid.UUID, inStock bool) (*models.Product, error) {

	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetInStock(ctx, productID, inStock); err != nil {
		return nil, productWriteError(err, "Failed to update stock")
	}

	product.InStock = inStock

	return product, nil
}

// UploadImage stores the new image under products/<shopId>/ and removes the
// previous one only after the product points at the replacement.
func (s *productService) UploadImage(ctx context.Context, ownerID, productID uuid.UUID, filename, contentType string, body io.Reader) (*models.Product, error) {

	if s.images == nil {
		return nil, errors.BadRequestError("Image uploads are not configured")
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.ValidationError("Only image uploads are allowed")
	}

	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	key := ImageKey(product.ShopID, s.now(), filename)

	url, err := s.images.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to upload image").WithError(err)
	}

	previous := product.ImagePath
	product.ImageURL = url
	product.ImagePath = key

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		s.deleteImage(ctx, key)
		return nil, productWriteError(err, "Failed to save product image")
	}

	s.deleteImage(ctx, previous)

	return product, nil
}

func (s *productService) ListMyProducts(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {

	shop, err := s.shopRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	return s.listByShop(ctx, shop.ID)
}

func (s *productService) ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {

	shop, err := s.shopRepo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	if shop.Status != models.ShopStatusActive {
		return nil, errors.NotFoundError("Shop not found")
	}

	return s.listByShop(ctx, shop.ID)
}

// ListGroupedProducts collapses available products by case-insensitive name.
func (s *productService) ListGroupedProducts(ctx context.Context) ([]models.GroupedProduct, error) {

	products, err := s.repo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return GroupProducts(products), nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]models.ListedProduct, error) {

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.BadRequestError("Search query is required")
	}

	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to search products").WithError(err)
	}

	return products, nil
}

func (s *productService) ShopsSellingProduct(ctx context.Context, name string) ([]models.ShopOffer, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.BadRequestError("Product name is required")
	}

	products, err := s.repo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return OffersFor(products, name), nil
}

func (s *productService) ownedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*models.Product, error) {

	shop, err := s.shopRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		return nil, shopLookupError(err)
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.ShopID != shop.ID {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *productService) listByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {

	products, err := s.repo.ListProductsByShop(ctx, shopID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) deleteImage(ctx context.Context, key string) {

	if key == "" || s.images == nil {
		return
	}

	if err := s.images.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to delete product image",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// ImageKey builds products/<shopId>/<unixMillis>_<filename> with the filename
// reduced to lowercase letters, digits, dots, dashes and underscores.
func ImageKey(shopID uuid.UUID, now time.Time, filename string) string {

	name := strings.ToLower(filepath.Base(strings.ReplaceAll(filename, "\\", "/")))
	name = strings.Trim(unsafeFilenameChars.ReplaceAllString(name, "_"), "_.")
	if name == "" {
		name = "image"
	}

	return fmt.Sprintf("products/%s/%d_%s", shopID, now.UnixMilli(), name)
}

// GroupProducts keeps first-seen display fields, the lowest effective price and the number of distinct shops.
func GroupProducts(products []models.ListedProduct) []models.GroupedProduct {

	type group struct {
		product models.GroupedProduct
		shops   map[uuid.UUID]struct{}
	}

	groups := map[string]*group{}
	order := []string{}

	for _, p := range products {

		key := strings.ToLower(strings.TrimSpace(p.Name))
		price := p.EffectivePrice()

		g, ok := groups[key]
		if !ok {
			g = &group{
				product: models.GroupedProduct{
					Name:     p.Name,
					Category: p.Category,
					Unit:     p.Unit,
					ImageURL: p.ImageURL,
					MinPrice: price,
				},
				shops: map[uuid.UUID]struct{}{},
			}
			groups[key] = g
			order = append(order, key)
		}

		if price < g.product.MinPrice {
			g.product.MinPrice = price
		}
		if g.product.ImageURL == "" {
			g.product.ImageURL = p.ImageURL
		}

		g.shops[p.ShopID] = struct{}{}
	}

	grouped := make([]models.GroupedProduct, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.product.ShopCount = len(g.shops)
		grouped = append(grouped, g.product)
	}

	slices.SortStableFunc(grouped, func(a, b models.GroupedProduct) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return grouped
}

// OffersFor lists every shop selling name, cheapest first. Ties go to the lower delivery charge.
func OffersFor(products []models.ListedProduct, name string) []models.ShopOffer {

	key := strings.ToLower(strings.TrimSpace(name))
	offers := []models.ShopOffer{}

	for _, p := range products {

		if strings.ToLower(strings.TrimSpace(p.Name)) != key {
			continue
		}

		offers = append(offers, models.ShopOffer{
			ShopID:         p.ShopID,
			ShopName:       p.ShopName,
			ProductID:      p.ID,
			ProductName:    p.Name,
			Unit:           p.Unit,
			Price:          p.Price,
			OfferPrice:     p.OfferPrice,
			EffectivePrice: p.EffectivePrice(),
			DeliveryCharge: p.DeliveryCharge,
			ImageURL:       p.ImageURL,
		})
	}

	slices.SortStableFunc(offers, func(a, b models.ShopOffer) int {
		if c := cmp.Compare(a.EffectivePrice, b.EffectivePrice); c != 0 {
			return c
		}
		return cmp.Compare(a.DeliveryCharge, b.DeliveryCharge)
	})

	return offers
}

func validateOffer(price float64, offer *float64) error {
	if offer != nil && *offer >= price {
		return errors.ValidationError("Offer price must be lower than the price")
	}
	return nil
}

func productWriteError(err error, message string) error {
	if isNotFound(err) {
		return errors.NotFoundError("Product not found").WithError(err)
	}
	return errors.DatabaseError(message).WithError(err)
}
