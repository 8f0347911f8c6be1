package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	cartMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/cart/mocks"
	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/feed"
	feedMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/feed/mocks"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/lifecycle"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	repoMocks "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/local-commerce-platform/internal/services"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceDeps struct {
	orders       *repoMocks.OrderRepository
	shops        *repoMocks.ShopRepository
	users        *repoMocks.UserRepository
	carts        *cartMocks.Store
	publisher    *feedMocks.Publisher
	notification *mocks.NotificationService
}

func setupOrderServiceTest(t *testing.T) (service.OrderService, orderServiceDeps) {
	deps := orderServiceDeps{
		orders:       repoMocks.NewOrderRepository(t),
		shops:        repoMocks.NewShopRepository(t),
		users:        repoMocks.NewUserRepository(t),
		carts:        cartMocks.NewStore(t),
		publisher:    feedMocks.NewPublisher(t),
		notification: mocks.NewNotificationService(t),
	}

	svc := service.NewOrderService(
		deps.orders,
		deps.shops,
		deps.users,
		deps.carts,
		service.NewCartLocks(),
		deps.publisher,
		deps.notification,
		lifecycle.NewCodeGenerator("TDN", lifecycle.DefaultCodeDigits),
	)

	return svc, deps
}

func changeOfType(changeType feed.ChangeType) any {
	return mock.MatchedBy(func(c feed.Change) bool { return c.Type == changeType })
}

func pendingOrder(shop *models.Shop, customerID uuid.UUID) *models.Order {
	return &models.Order{
		ID:             uuid.New(),
		OrderID:        "TDN4821",
		CustomerID:     customerID,
		ShopID:         shop.ID,
		ShopName:       shop.Name,
		Total:          120,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentStatusPending,
		CommissionRate: 10,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	customer := &models.User{ID: uuid.New(), Name: "Asha", Phone: "9876543210", Email: "asha@example.com"}
	req := &models.CreateOrderRequest{DeliveryAddress: "12 MG Road, Pune"}

	t.Run("Success - Derives totals and freezes commission", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)
		owner := &models.User{ID: shop.OwnerID, Email: "owner@example.com"}

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 2), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.users.On("GetUserById", mock.Anything, customer.ID).Return(customer, nil).Once()
		deps.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		deps.carts.On("Delete", mock.Anything, customer.ID).Return(nil).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, changeOfType(feed.Added)).Return(nil).Once()
		deps.users.On("GetUserById", mock.Anything, shop.OwnerID).Return(owner, nil).Once()
		deps.notification.On("NotifyShopNewOrder", mock.Anything, "owner@example.com", mock.AnythingOfType("*models.Order")).Return(nil).Once()

		order, err := svc.CreateOrder(context.Background(), customer.ID, req)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.OrderID, "TDN"))
		assert.Len(t, order.OrderID, 7)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
		assert.Equal(t, 100.0, order.Subtotal)
		assert.Equal(t, 20.0, order.DeliveryCharge)
		assert.Equal(t, 120.0, order.Total)
		assert.Equal(t, 10.0, order.CommissionRate)
		assert.Equal(t, 12.0, order.CommissionAmount)
		assert.False(t, order.CommissionPaid)
		assert.Equal(t, "Asha", order.CustomerName)
		assert.Equal(t, "12 MG Road, Pune", order.DeliveryAddress)
	})

	t.Run("Success - Retries on order code collision", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 1), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.users.On("GetUserById", mock.Anything, customer.ID).Return(customer, nil).Once()
		deps.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(&pq.Error{Code: "23505"}).Twice()
		deps.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		deps.carts.On("Delete", mock.Anything, customer.ID).Return(nil).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, changeOfType(feed.Added)).Return(nil).Once()
		deps.users.On("GetUserById", mock.Anything, shop.OwnerID).Return(nil, repository.ErrNotFound).Once()

		order, err := svc.CreateOrder(context.Background(), customer.ID, req)

		require.NoError(t, err)
		assert.NotNil(t, order)
		deps.orders.AssertNumberOfCalls(t, "CreateOrder", 3)
	})

	t.Run("Failure - Gives up after repeated collisions", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 1), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.users.On("GetUserById", mock.Anything, customer.ID).Return(customer, nil).Once()
		deps.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(&pq.Error{Code: "23505"}).Times(5)

		order, err := svc.CreateOrder(context.Background(), customer.ID, req)

		assert.Nil(t, order)
		appErr := assertAppError(t, err, appErrors.ErrCodeInternal)
		assert.Contains(t, appErr.Message, "order code")
		deps.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Success - Publish and email failures do not fail checkout", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)
		owner := &models.User{ID: shop.OwnerID, Email: "owner@example.com"}

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 1), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.users.On("GetUserById", mock.Anything, customer.ID).Return(customer, nil).Once()
		deps.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		deps.carts.On("Delete", mock.Anything, customer.ID).Return(errors.New("redis down")).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, mock.Anything).Return(errors.New("redis down")).Once()
		deps.users.On("GetUserById", mock.Anything, shop.OwnerID).Return(owner, nil).Once()
		deps.notification.On("NotifyShopNewOrder", mock.Anything, owner.Email, mock.Anything).Return(errors.New("sendgrid down")).Once()

		order, err := svc.CreateOrder(context.Background(), customer.ID, req)

		require.NoError(t, err)
		assert.Equal(t, 70.0, order.Total)
		assert.Equal(t, 7.0, order.CommissionAmount)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cart.New(), nil).Once()

		_, err := svc.CreateOrder(context.Background(), customer.ID, req)

		assertAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Shop stopped accepting orders", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)
		shop.Status = models.ShopStatusSuspended

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 1), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.CreateOrder(context.Background(), customer.ID, req)

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Blank delivery address", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		product := productOf(shop, "Atta", 50)

		deps.carts.On("Load", mock.Anything, customer.ID).Return(cartWith(shop, product, 1), nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.users.On("GetUserById", mock.Anything, customer.ID).Return(customer, nil).Once()

		_, err := svc.CreateOrder(context.Background(), customer.ID, &models.CreateOrderRequest{DeliveryAddress: "   "})

		assertAppError(t, err, appErrors.ErrCodeValidation)
	})
}

func TestOrderService_TransitionOrder(t *testing.T) {
	customerID := uuid.New()

	t.Run("Success - Owner accepts a pending order", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		order := pendingOrder(shop, customerID)
		actor := &models.Claims{UserID: shop.OwnerID, Role: models.RoleShopOwner, ShopID: shop.ID}

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
		deps.orders.On("UpdateOrderLifecycle", mock.Anything, order).Return(nil).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, changeOfType(feed.Modified)).Return(nil).Once()
		deps.users.On("GetUserById", mock.Anything, customerID).Return(&models.User{ID: customerID, Email: "asha@example.com"}, nil).Once()
		deps.notification.On("NotifyCustomerStatus", mock.Anything, "asha@example.com", order).Return(nil).Once()

		updated, err := svc.TransitionOrder(context.Background(), actor, order.OrderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusAccepted})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusAccepted, updated.Status)
		assert.NotNil(t, updated.AcceptedAt)
	})

	t.Run("Success - Admin moves any order", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		order := pendingOrder(shop, customerID)
		order.Status = models.OrderStatusOutForDelivery
		actor := &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.orders.On("UpdateOrderLifecycle", mock.Anything, order).Return(nil).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, changeOfType(feed.Modified)).Return(nil).Once()
		deps.users.On("GetUserById", mock.Anything, customerID).Return(nil, errors.New("db down")).Once()

		updated, err := svc.TransitionOrder(context.Background(), actor, order.OrderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, updated.Status)
		assert.Equal(t, models.PaymentStatusCompleted, updated.PaymentStatus)
		deps.shops.AssertNotCalled(t, "GetShopByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Another shop's owner", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		order := pendingOrder(shop, customerID)
		actor := &models.Claims{UserID: uuid.New(), Role: models.RoleShopOwner}

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.TransitionOrder(context.Background(), actor, order.OrderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusAccepted})

		assertAppError(t, err, appErrors.ErrCodeForbidden)
		deps.orders.AssertNotCalled(t, "UpdateOrderLifecycle", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Skipping a step", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		order := pendingOrder(shop, customerID)
		actor := &models.Claims{UserID: shop.OwnerID, Role: models.RoleShopOwner}

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.TransitionOrder(context.Background(), actor, order.OrderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})

		appErr := assertAppError(t, err, appErrors.ErrCodeInvalidTransition)
		assert.Equal(t, "cannot move order from pending to delivered", appErr.Message)
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		deps.orders.AssertNotCalled(t, "UpdateOrderLifecycle", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rejection without reason", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		order := pendingOrder(shop, customerID)
		actor := &models.Claims{UserID: shop.OwnerID, Role: models.RoleShopOwner}

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()

		_, err := svc.TransitionOrder(context.Background(), actor, order.OrderID, &models.UpdateOrderStatusRequest{Status: models.OrderStatusRejected})

		assertAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Unknown order", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)

		deps.orders.On("GetOrderByCode", mock.Anything, "TDN0000").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.TransitionOrder(context.Background(), &models.Claims{Role: models.RoleAdmin}, "TDN0000", &models.UpdateOrderStatusRequest{Status: models.OrderStatusAccepted})

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestOrderService_GetOrderByCode(t *testing.T) {
	shop := activeShop("Sharma Kirana")
	customerID := uuid.New()

	tests := []struct {
		name      string
		actor     *models.Claims
		shopCheck bool
		wantCode  string
	}{
		{name: "Customer who placed it", actor: &models.Claims{UserID: customerID, Role: models.RoleCustomer}},
		{name: "Admin", actor: &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}},
		{name: "Owning shop", actor: &models.Claims{UserID: shop.OwnerID, Role: models.RoleShopOwner}, shopCheck: true},
		{name: "Other customer", actor: &models.Claims{UserID: uuid.New(), Role: models.RoleCustomer}, shopCheck: true, wantCode: appErrors.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := setupOrderServiceTest(t)
			order := pendingOrder(shop, customerID)

			deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
			if tt.shopCheck {
				deps.shops.On("GetShopByID", mock.Anything, shop.ID).Return(shop, nil).Once()
			}

			result, err := svc.GetOrderByCode(context.Background(), tt.actor, order.OrderID)

			if tt.wantCode != "" {
				assert.Nil(t, result)
				assertAppError(t, err, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, order.OrderID, result.OrderID)
		})
	}
}

func TestOrderService_MarkCommissionPaid(t *testing.T) {
	shop := activeShop("Sharma Kirana")
	admin := &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		order := pendingOrder(shop, uuid.New())
		order.Status = models.OrderStatusDelivered

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()
		deps.orders.On("SetCommissionPaid", mock.Anything, order.ID, true).Return(nil).Once()
		deps.publisher.On("Publish", mock.Anything, shop.ID, changeOfType(feed.Modified)).Return(nil).Once()

		updated, err := svc.MarkCommissionPaid(context.Background(), admin, order.OrderID, true)

		require.NoError(t, err)
		assert.True(t, updated.CommissionPaid)
		assert.WithinDuration(t, time.Now(), updated.UpdatedAt, time.Minute)
	})

	t.Run("Failure - Not an admin", func(t *testing.T) {
		svc, _ := setupOrderServiceTest(t)

		_, err := svc.MarkCommissionPaid(context.Background(), &models.Claims{Role: models.RoleShopOwner}, "TDN4821", true)

		assertAppError(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Order not delivered", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		order := pendingOrder(shop, uuid.New())

		deps.orders.On("GetOrderByCode", mock.Anything, order.OrderID).Return(order, nil).Once()

		_, err := svc.MarkCommissionPaid(context.Background(), admin, order.OrderID, true)

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})
}

func TestOrderService_Listing(t *testing.T) {
	t.Run("ListAllOrders normalises paging", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)

		deps.orders.On("ListAllOrders", mock.Anything, models.OrderStatusPending, 1, 10).Return([]models.Order{}, 0, nil).Once()

		orders, total, err := svc.ListAllOrders(context.Background(), models.OrderStatusPending, 0, 500)

		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.Zero(t, total)
	})

	t.Run("ListAllOrders rejects unknown status", func(t *testing.T) {
		svc, _ := setupOrderServiceTest(t)

		_, _, err := svc.ListAllOrders(context.Background(), models.OrderStatus("lost"), 1, 10)

		assertAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("ListShopOrders resolves the owner's shop", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		shop := activeShop("Sharma Kirana")
		orders := []models.Order{*pendingOrder(shop, uuid.New())}

		deps.shops.On("GetShopByOwner", mock.Anything, shop.OwnerID).Return(shop, nil).Once()
		deps.orders.On("ListOrdersByShop", mock.Anything, shop.ID).Return(orders, nil).Once()

		result, err := svc.ListShopOrders(context.Background(), shop.OwnerID)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("ListShopOrders without a shop", func(t *testing.T) {
		svc, deps := setupOrderServiceTest(t)
		ownerID := uuid.New()

		deps.shops.On("GetShopByOwner", mock.Anything, ownerID).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.ListShopOrders(context.Background(), ownerID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
