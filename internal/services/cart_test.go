package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	cartMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/cart/mocks"
	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest(t *testing.T) (service.CartService, *cartMocks.Store, *repoMocks.ProductRepository, *repoMocks.ShopRepository) {
	store := cartMocks.NewStore(t)
	productRepo := repoMocks.NewProductRepository(t)
	shopRepo := repoMocks.NewShopRepository(t)

	return service.NewCartService(store, productRepo, shopRepo, service.NewCartLocks()), store, productRepo, shopRepo
}

func activeShop(name string) *models.Shop {
	return &models.Shop{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           name,
		Status:         models.ShopStatusActive,
		IsOpen:         true,
		DeliveryCharge: 20,
		CommissionRate: 10,
	}
}

func productOf(shop *models.Shop, name string, price float64) *models.Product {
	return &models.Product{ID: uuid.New(), ShopID: shop.ID, Name: name, Unit: "kg", Price: price, InStock: true}
}

func cartWith(shop *models.Shop, product *models.Product, qty int) *cart.Cart {
	c := cart.New()
	c.AddItem(cart.Item{
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    qty,
		Unit:        product.Unit,
	}, shop.DeliveryCharge)
	return c
}

func assertAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected *AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestCartService_AddItem(t *testing.T) {
	customerID := uuid.New()

	t.Run("Success - Empty cart takes the product's shop", func(t *testing.T) {
		svc, store, productRepo, shopRepo := setupCartServiceTest(t)
		shop := activeShop("Sharma Kirana")
		offer := 45.0
		product := productOf(shop, "Atta", 50)
		product.OfferPrice = &offer

		productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		shopRepo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		store.On("Load", mock.Anything, customerID).Return(cart.New(), nil).Once()
		store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

		c, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: product.ID, Quantity: 2})

		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, shop.ID, *c.ShopID)
		assert.Equal(t, "Sharma Kirana", *c.ShopName)
		assert.Equal(t, 45.0, c.Items[0].Price)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, 20.0, c.DeliveryCharge)
		assert.Equal(t, 110.0, c.Total())
	})

	t.Run("Success - Same product increments quantity", func(t *testing.T) {
		svc, store, productRepo, shopRepo := setupCartServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)

		productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		shopRepo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		store.On("Load", mock.Anything, customerID).Return(cartWith(shop, product, 1), nil).Once()
		store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

		c, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: product.ID, Quantity: 0})

		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("Failure - Product from another shop", func(t *testing.T) {
		svc, store, productRepo, shopRepo := setupCartServiceTest(t)
		current := activeShop("Sharma Kirana")
		other := activeShop("Gupta Dairy")
		existing := productOf(current, "Atta", 50)
		milk := productOf(other, "Milk", 30)

		productRepo.On("GetProductByID", mock.Anything, milk.ID).Return(milk, nil).Once()
		shopRepo.On("GetShopByID", mock.Anything, other.ID).Return(other, nil).Once()
		store.On("Load", mock.Anything, customerID).Return(cartWith(current, existing, 1), nil).Once()

		c, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: milk.ID, Quantity: 1})

		assert.Nil(t, c)
		appErr := assertAppError(t, err, appErrors.ErrCodeConflict)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "Sharma Kirana")
		assert.ErrorIs(t, err, cart.ErrShopConflict)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Out of stock", func(t *testing.T) {
		svc, _, productRepo, _ := setupCartServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)
		product.InStock = false

		productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		_, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: product.ID, Quantity: 1})

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Shop closed", func(t *testing.T) {
		svc, _, productRepo, shopRepo := setupCartServiceTest(t)
		shop := activeShop("Sharma Kirana")
		shop.IsOpen = false
		product := productOf(shop, "Atta", 50)

		productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		shopRepo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: product.ID, Quantity: 1})

		appErr := assertAppError(t, err, appErrors.ErrCodeBadRequest)
		assert.Equal(t, "Shop is not accepting orders right now", appErr.Message)
	})

	t.Run("Failure - Product not found", func(t *testing.T) {
		svc, _, productRepo, _ := setupCartServiceTest(t)
		productID := uuid.New()

		productRepo.On("GetProductByID", mock.Anything, productID).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: productID, Quantity: 1})

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		svc, store, productRepo, shopRepo := setupCartServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)

		productRepo.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
		shopRepo.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		store.On("Load", mock.Anything, customerID).Return(nil, errors.New("redis down")).Once()

		_, err := svc.AddItem(context.Background(), customerID, &models.AddCartItemRequest{ProductID: product.ID, Quantity: 1})

		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestCartService_ClearAndAdd(t *testing.T) {
	svc, store, productRepo, shopRepo := setupCartServiceTest(t)
	customerID := uuid.New()
	other := activeShop("Gupta Dairy")
	milk := productOf(other, "Milk", 30)

	productRepo.On("GetProductByID", mock.Anything, milk.ID).Return(milk, nil).Once()
	shopRepo.On("GetShopByID", mock.Anything, other.ID).Return(other, nil).Once()
	store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	c, err := svc.ClearAndAdd(context.Background(), customerID, &models.AddCartItemRequest{ProductID: milk.ID, Quantity: 3})

	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, other.ID, *c.ShopID)
	assert.Equal(t, 3, c.Items[0].Quantity)
	store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestCartService_SetQuantity(t *testing.T) {
	customerID := uuid.New()
	shop := activeShop("Sharma Kirana")
	product := productOf(shop, "Atta", 50)

	t.Run("Success - Overwrites quantity", func(t *testing.T) {
		svc, store, _, _ := setupCartServiceTest(t)

		store.On("Load", mock.Anything, customerID).Return(cartWith(shop, product, 1), nil).Once()
		store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

		c, err := svc.SetQuantity(context.Background(), customerID, product.ID, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("Success - Zero removes the last line and releases the shop", func(t *testing.T) {
		svc, store, _, _ := setupCartServiceTest(t)

		store.On("Load", mock.Anything, customerID).Return(cartWith(shop, product, 1), nil).Once()
		store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

		c, err := svc.SetQuantity(context.Background(), customerID, product.ID, 0)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.ShopID)
		assert.Nil(t, c.ShopName)
	})

	t.Run("Failure - Item not in cart", func(t *testing.T) {
		svc, store, _, _ := setupCartServiceTest(t)

		store.On("Load", mock.Anything, customerID).Return(cart.New(), nil).Once()

		_, err := svc.SetQuantity(context.Background(), customerID, uuid.New(), 2)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, store, _, _ := setupCartServiceTest(t)
	customerID := uuid.New()
	shop := activeShop("Sharma Kirana")
	atta := productOf(shop, "Atta", 50)
	rice := productOf(shop, "Rice", 70)

	c := cartWith(shop, atta, 1)
	c.AddItem(cart.Item{ShopID: shop.ID, ShopName: shop.Name, ProductID: rice.ID, ProductName: rice.Name, Price: rice.Price, Quantity: 1}, shop.DeliveryCharge)

	store.On("Load", mock.Anything, customerID).Return(c, nil).Once()
	store.On("Save", mock.Anything, customerID, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	result, err := svc.RemoveItem(context.Background(), customerID, atta.ID)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, rice.ID, result.Items[0].ProductID)
	assert.Equal(t, shop.ID, *result.ShopID)
}

func TestCartService_ClearCart(t *testing.T) {
	customerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, store, _, _ := setupCartServiceTest(t)
		store.On("Delete", mock.Anything, customerID).Return(nil).Once()

		assert.NoError(t, svc.ClearCart(context.Background(), customerID))
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		svc, store, _, _ := setupCartServiceTest(t)
		store.On("Delete", mock.Anything, customerID).Return(errors.New("redis down")).Once()

		assertAppError(t, svc.ClearCart(context.Background(), customerID), appErrors.ErrCodeDatabaseError)
	})
}
