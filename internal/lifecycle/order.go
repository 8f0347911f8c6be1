package lifecycle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cart"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart             = errors.New("cannot place an order with an empty cart")
	ErrMissingAddress        = errors.New("a delivery address is required")
	ErrMixedShops            = errors.New("all items must come from the ordering shop")
	ErrInvalidQuantity       = errors.New("item quantity must be at least one")
	ErrInvalidCommissionRate = errors.New("commission rate must be between 0 and 100")
)

// Checkout is everything needed to derive an order. CommissionRate is the
// shop's rate at this moment and is frozen into the order.
type Checkout struct {
	OrderID         string
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	ShopID          uuid.UUID
	ShopName        string
	Items           []cart.Item
	DeliveryCharge  float64
	CommissionRate  float64
	Now             time.Time
}

// NewOrder derives a pending cash-on-delivery order. Apart from ID, OrderID and
// timestamps, the result is a pure function of the input.
func NewOrder(in Checkout) (*models.Order, error) {

	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	address := strings.TrimSpace(in.DeliveryAddress)
	if address == "" {
		return nil, ErrMissingAddress
	}

	if in.CommissionRate < 0 || in.CommissionRate > 100 {
		return nil, ErrInvalidCommissionRate
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	subtotal := decimal.Zero

	for _, item := range in.Items {

		if item.ShopID != in.ShopID {
			return nil, ErrMixedShops
		}

		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		line := cart.LineTotal(item.Price, item.Quantity)
		subtotal = subtotal.Add(line)

		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Subtotal:    line.InexactFloat64(),
		})
	}

	total := subtotal.Add(decimal.NewFromFloat(in.DeliveryCharge))

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &models.Order{
		ID:               uuid.New(),
		OrderID:          in.OrderID,
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		CustomerPhone:    in.CustomerPhone,
		DeliveryAddress:  address,
		ShopID:           in.ShopID,
		ShopName:         in.ShopName,
		Items:            items,
		Subtotal:         subtotal.InexactFloat64(),
		DeliveryCharge:   in.DeliveryCharge,
		Total:            total.InexactFloat64(),
		PaymentMethod:    models.PaymentMethodCOD,
		PaymentStatus:    models.PaymentStatusPending,
		Status:           models.OrderStatusPending,
		CommissionRate:   in.CommissionRate,
		CommissionAmount: Commission(total.InexactFloat64(), in.CommissionRate),
		CommissionPaid:   false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Commission is round(total * rate / 100), halves rounded away from zero.
func Commission(total, rate float64) float64 {
	return decimal.NewFromFloat(total).
		Mul(decimal.NewFromFloat(rate)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		InexactFloat64()
}

const (
	DefaultCodeDigits = 4
	maxCodeDigits     = 9
)

// CodeGenerator issues short human-readable order codes: the prefix followed
// by a number with a fixed digit count and no leading zero.
type CodeGenerator struct {
	prefix string
	floor  int
	intN   func(n int) int
}

// NewCodeGenerator clamps digits to 4..9. Four digits give TDN1000..TDN9999.
func NewCodeGenerator(prefix string, digits int) *CodeGenerator {
	digits = min(max(digits, DefaultCodeDigits), maxCodeDigits)

	floor := 1
	for range digits - 1 {
		floor *= 10
	}

	return &CodeGenerator{prefix: prefix, floor: floor, intN: rand.IntN}
}

func (g *CodeGenerator) Next() string {
	return fmt.Sprintf("%s%d", g.prefix, g.floor+g.intN(g.Space()))
}

// Space is the number of distinct codes the generator can produce.
func (g *CodeGenerator) Space() int {
	return 9 * g.floor
}
