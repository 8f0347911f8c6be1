package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/feed"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/lifecycle"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/metrics"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

// maxCodeAttempts bounds retries when a generated order code is already taken.
const maxCodeAttempts = 5

type OrderService interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByCode(ctx context.Context, actor *models.Claims, code string) (*models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error)
	ListShopOrders(ctx context.Context, ownerID uuid.UUID) ([]models.Order, error)
	ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error)
	TransitionOrder(ctx context.Context, actor *models.Claims, code string, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	MarkCommissionPaid(ctx context.Context, actor *models.Claims, code string, paid bool) (*models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	shopRepo     repository.ShopRepository
	userRepo     repository.UserRepository
	carts        cart.Store
	locks        *CartLocks
	publisher    feed.Publisher
	notification NotificationService
	codes        *lifecycle.CodeGenerator
	now          func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	carts cart.Store,
	locks *CartLocks,
	publisher feed.Publisher,
	notification NotificationService,
	codes *lifecycle.CodeGenerator,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		shopRepo:     shopRepo,
		userRepo:     userRepo,
		carts:        carts,
		locks:        locks,
		publisher:    publisher,
		notification: notification,
		codes:        codes,
		now:          time.Now,
	}
}

// CreateOrder checks out the customer's stored cart. The shop's live commission
// rate and delivery charge are frozen into the order.
func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	unlock := s.locks.Lock(customerID)
	defer unlock()

	c, err := s.carts.Load(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	if c.IsEmpty() || c.ShopID == nil {
		return nil, errors.ValidationError("Cannot place an order with an empty cart")
	}

	shop, err := s.shopRepo.GetShopByID(ctx, *c.ShopID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Shop not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch shop").WithError(err)
	}

	if !shop.AcceptsOrders() {
		return nil, errors.BadRequestError("Shop is not accepting orders right now")
	}

	customer, err := s.userRepo.GetUserById(ctx, customerID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch customer").WithError(err)
	}

	var order *models.Order

	for attempt := 1; ; attempt++ {

		order, err = lifecycle.NewOrder(lifecycle.Checkout{
			OrderID:         s.codes.Next(),
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			DeliveryAddress: utils.Sanitize(req.DeliveryAddress),
			ShopID:          shop.ID,
			ShopName:        shop.Name,
			Items:           c.Items,
			DeliveryCharge:  shop.DeliveryCharge,
			CommissionRate:  shop.CommissionRate,
			Now:             s.now(),
		})
		if err != nil {
			return nil, checkoutError(err)
		}

		err = s.orderRepo.CreateOrder(ctx, order)
		if err == nil {
			break
		}

		if !repository.IsUniqueViolation(err) {
			return nil, errors.DatabaseError("Failed to create order").WithError(err)
		}

		if attempt == maxCodeAttempts {
			logger.Error("Order code space exhausted, raise ORDER_CODE_DIGITS",
				slog.Int("attempts", attempt),
				slog.Int("codeSpace", s.codes.Space()),
			)
			return nil, errors.InternalError("Could not allocate an order code, please retry").WithError(err)
		}

		logger.Warn("Order code collision, retrying", slog.String("orderId", order.OrderID), slog.Int("attempt", attempt))
	}

	metrics.OrderCreated()

	logger.Info("Order placed",
		slog.String("orderId", order.OrderID),
		slog.String("shopId", shop.ID.String()),
		slog.Float64("total", order.Total),
	)

	if err := s.carts.Delete(ctx, customerID); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.String("error", err.Error()))
	}

	s.publish(ctx, feed.Added, order)

	if owner, err := s.userRepo.GetUserById(ctx, shop.OwnerID); err != nil {
		logger.Warn("Shop owner lookup failed, skipping new order email", slog.String("error", err.Error()))
	} else if err := s.notification.NotifyShopNewOrder(ctx, owner.Email, order); err != nil {
		logNotifyFailure(logger, "New order email failed", order.OrderID, err)
	}

	return order, nil
}

func (s *orderService) GetOrderByCode(ctx context.Context, actor *models.Claims, code string) (*models.Order, error) {

	order, err := s.getOrder(ctx, code)
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() || order.CustomerID == actor.UserID {
		return order, nil
	}

	if err := s.authorizeShop(ctx, actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	page, size = normalizePage(page, size)

	orders, total, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) ListShopOrders(ctx context.Context, ownerID uuid.UUID) ([]models.Order, error) {

	shop, err := s.shopRepo.GetShopByOwner(ctx, ownerID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Shop not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch shop").WithError(err)
	}

	orders, err := s.orderRepo.ListOrdersByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error) {

	if status != "" && !lifecycle.IsKnown(status) {
		return nil, 0, errors.BadRequestError("Unknown order status")
	}

	page, size = normalizePage(page, size)

	orders, total, err := s.orderRepo.ListAllOrders(ctx, status, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// TransitionOrder moves an order one step through its lifecycle on behalf of
// the owning shop or an admin.
func (s *orderService) TransitionOrder(ctx context.Context, actor *models.Claims, code string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	order, err := s.getOrder(ctx, code)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		if err := s.authorizeShop(ctx, actor, order); err != nil {
			return nil, err
		}
	}

	from := order.Status

	if err := lifecycle.Transition(order, req.Status, utils.Sanitize(req.RejectionReason), s.now()); err != nil {

		var transitionErr *lifecycle.TransitionError
		if stdErrors.As(err, &transitionErr) {
			metrics.OrderTransitionRejected()
			logger.Warn("Order transition rejected",
				slog.String("orderId", order.OrderID),
				slog.String("from", string(transitionErr.From)),
				slog.String("to", string(transitionErr.To)),
			)
			return nil, errors.InvalidTransitionError(transitionErr.Error()).WithError(err)
		}

		if stdErrors.Is(err, lifecycle.ErrMissingRejectionReason) {
			return nil, errors.ValidationError("A rejection reason is required").WithError(err)
		}

		return nil, errors.InternalError("Failed to update order status").WithError(err)
	}

	if err := s.orderRepo.UpdateOrderLifecycle(ctx, order); err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	metrics.OrderTransitioned(string(from), string(order.Status))

	logger.Info("Order status changed",
		slog.String("orderId", order.OrderID),
		slog.String("from", string(from)),
		slog.String("to", string(order.Status)),
	)

	s.publish(ctx, feed.Modified, order)

	if customer, err := s.userRepo.GetUserById(ctx, order.CustomerID); err != nil {
		logger.Warn("Customer lookup failed, skipping status email", slog.String("error", err.Error()))
	} else if err := s.notification.NotifyCustomerStatus(ctx, customer.Email, order); err != nil {
		logNotifyFailure(logger, "Status email failed", order.OrderID, err)
	}

	return order, nil
}

// MarkCommissionPaid settles the platform's commission on a delivered order.
func (s *orderService) MarkCommissionPaid(ctx context.Context, actor *models.Claims, code string, paid bool) (*models.Order, error) {

	if !actor.IsAdmin() {
		return nil, errors.ForbiddenError("Only admins can settle commission")
	}

	order, err := s.getOrder(ctx, code)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusDelivered {
		return nil, errors.BadRequestError("Commission can only be settled on delivered orders")
	}

	if err := s.orderRepo.SetCommissionPaid(ctx, order.ID, paid); err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update commission status").WithError(err)
	}

	order.CommissionPaid = paid
	order.UpdatedAt = s.now()

	s.publish(ctx, feed.Modified, order)

	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, code string) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) authorizeShop(ctx context.Context, actor *models.Claims, order *models.Order) error {

	shop, err := s.shopRepo.GetShopByID(ctx, order.ShopID)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFoundError("Shop not found").WithError(err)
		}
		return errors.DatabaseError("Failed to fetch shop").WithError(err)
	}

	if shop.OwnerID != actor.UserID {
		return errors.ForbiddenError("You do not have access to this order")
	}

	return nil
}

// publish is best effort: the order row is the source of truth and dashboards resync on reconnect.
func (s *orderService) publish(ctx context.Context, changeType feed.ChangeType, order *models.Order) {

	if err := s.publisher.Publish(ctx, order.ShopID, feed.Change{Type: changeType, Order: *order}); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to publish order change",
			slog.String("orderId", order.OrderID),
			slog.String("type", string(changeType)),
			slog.String("error", err.Error()),
		)
	}
}

func checkoutError(err error) error {
	switch {
	case stdErrors.Is(err, lifecycle.ErrEmptyCart):
		return errors.ValidationError("Cannot place an order with an empty cart").WithError(err)
	case stdErrors.Is(err, lifecycle.ErrMissingAddress):
		return errors.ValidationError("A delivery address is required").WithError(err)
	case stdErrors.Is(err, lifecycle.ErrMixedShops):
		return errors.ConflictError("Cart holds items from more than one shop").WithError(err)
	case stdErrors.Is(err, lifecycle.ErrInvalidQuantity):
		return errors.ValidationError("Item quantity must be at least one").WithError(err)
	default:
		return errors.InternalError("Failed to build order").WithError(err)
	}
}
