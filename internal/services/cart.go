package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/metrics"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*cart.Cart, error)
	AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*cart.Cart, error)
	ClearAndAdd(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*cart.Cart, error)
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*cart.Cart, error)
	SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) (*cart.Cart, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}

type cartService struct {
	store       cart.Store
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	locks       *CartLocks
}

func NewCartService(store cart.Store, productRepo repository.ProductRepository, shopRepo repository.ShopRepository, locks *CartLocks) CartService {
	return &cartService{store: store, productRepo: productRepo, shopRepo: shopRepo, locks: locks}
}

func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*cart.Cart, error) {

	c, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return c, nil
}

// AddItem refuses items from a second shop with a CONFLICT naming the shop the cart belongs to.
func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*cart.Cart, error) {

	item, deliveryCharge, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(customerID)
	defer unlock()

	c, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	if !c.AddItem(item, deliveryCharge) {
		metrics.CartConflict()

		current := ""
		if c.ShopName != nil {
			current = *c.ShopName
		}

		middleware.LoggerFromContext(ctx).Info("Cart shop conflict",
			slog.String("cartShop", current),
			slog.String("requestedShop", item.ShopName),
		)

		return nil, errors.ConflictError(fmt.Sprintf("Your cart has items from %s", current)).
			WithDetail("Clear the cart to order from " + item.ShopName).
			WithError(cart.ErrShopConflict)
	}

	if err := s.store.Save(ctx, customerID, c); err != nil {
		return nil, errors.DatabaseError("Failed to save cart").WithError(err)
	}

	return c, nil
}

func (s *cartService) ClearAndAdd(ctx context.Context, customerID uuid.UUID, req *models.AddCartItemRequest) (*cart.Cart, error) {

	item, deliveryCharge, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(customerID)
	defer unlock()

	c := cart.New()
	c.ClearAndAdd(item, deliveryCharge)

	if err := s.store.Save(ctx, customerID, c); err != nil {
		return nil, errors.DatabaseError("Failed to save cart").WithError(err)
	}

	return c, nil
}

func (s *cartService) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*cart.Cart, error) {

	return s.mutate(ctx, customerID, productID, func(c *cart.Cart) {
		c.RemoveItem(productID)
	})
}

func (s *cartService) SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) (*cart.Cart, error) {

	return s.mutate(ctx, customerID, productID, func(c *cart.Cart) {
		c.SetQuantity(productID, quantity)
	})
}

func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {

	unlock := s.locks.Lock(customerID)
	defer unlock()

	if err := s.store.Delete(ctx, customerID); err != nil {
		return errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}

func (s *cartService) mutate(ctx context.Context, customerID, productID uuid.UUID, apply func(c *cart.Cart)) (*cart.Cart, error) {

	unlock := s.locks.Lock(customerID)
	defer unlock()

	c, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	if !c.Has(productID) {
		return nil, errors.NotFoundError("Item not found in the cart")
	}

	apply(c)

	if err := s.store.Save(ctx, customerID, c); err != nil {
		return nil, errors.DatabaseError("Failed to save cart").WithError(err)
	}

	return c, nil
}

// resolveItem snapshots the product at its current effective price.
func (s *cartService) resolveItem(ctx context.Context, req *models.AddCartItemRequest) (cart.Item, float64, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if isNotFound(err) {
			return cart.Item{}, 0, errors.NotFoundError("Product not found").WithError(err)
		}
		return cart.Item{}, 0, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.InStock {
		return cart.Item{}, 0, errors.BadRequestError("Product is out of stock")
	}

	shop, err := s.shopRepo.GetShopByID(ctx, product.ShopID)
	if err != nil {
		if isNotFound(err) {
			return cart.Item{}, 0, errors.NotFoundError("Shop not found").WithError(err)
		}
		return cart.Item{}, 0, errors.DatabaseError("Failed to fetch shop").WithError(err)
	}

	if !shop.AcceptsOrders() {
		return cart.Item{}, 0, errors.BadRequestError("Shop is not accepting orders right now")
	}

	return cart.Item{
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.EffectivePrice(),
		Quantity:    req.Quantity,
		Unit:        product.Unit,
		ImageURL:    product.ImageURL,
	}, shop.DeliveryCharge, nil
}
