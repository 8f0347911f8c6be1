package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

type PaymentStatus string

type PaymentMethod string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusRejected       OrderStatus = "rejected"
	OrderStatusPacked         OrderStatus = "packed"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"

	PaymentMethodCOD PaymentMethod = "cod"
)

// OrderItem is a snapshot of a cart line taken at checkout. It never follows later product edits.
type OrderItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	Subtotal    float64   `json:"subtotal"`
}

type Order struct {
	ID               uuid.UUID     `json:"id"`
	OrderID          string        `json:"order_id"`
	CustomerID       uuid.UUID     `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerPhone    string        `json:"customer_phone"`
	DeliveryAddress  string        `json:"delivery_address"`
	ShopID           uuid.UUID     `json:"shop_id"`
	ShopName         string        `json:"shop_name"`
	Items            []OrderItem   `json:"items"`
	Subtotal         float64       `json:"subtotal"`
	DeliveryCharge   float64       `json:"delivery_charge"`
	Total            float64       `json:"total"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	Status           OrderStatus   `json:"status"`
	CommissionRate   float64       `json:"commission_rate"`
	CommissionAmount float64       `json:"commission_amount"`
	CommissionPaid   bool          `json:"commission_paid"`
	RejectionReason  string        `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	AcceptedAt       *time.Time    `json:"accepted_at,omitempty"`
	PackedAt         *time.Time    `json:"packed_at,omitempty"`
	DeliveredAt      *time.Time    `json:"delivered_at,omitempty"`
}

type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status          OrderStatus `json:"status" validate:"required,oneof=accepted rejected packed out_for_delivery delivered"`
	RejectionReason string      `json:"rejection_reason" validate:"max=300"`
}

type CommissionPaidRequest struct {
	Paid *bool `json:"paid" validate:"required"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}
