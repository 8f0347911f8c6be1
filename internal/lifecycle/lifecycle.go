// Package lifecycle owns the order state machine and the one-time financial
// derivation done when a cart becomes an order.
package lifecycle

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
)

var (
	ErrInvalidTransition      = errors.New("invalid order status transition")
	ErrMissingRejectionReason = errors.New("a rejection reason is required to reject an order")
)

// TransitionError names the status an order was in and the status that was requested.
type TransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:        {models.OrderStatusAccepted, models.OrderStatusRejected},
	models.OrderStatusAccepted:       {models.OrderStatusPacked},
	models.OrderStatusPacked:         {models.OrderStatusOutForDelivery},
	models.OrderStatusOutForDelivery: {models.OrderStatusDelivered},
	models.OrderStatusDelivered:      nil,
	models.OrderStatusRejected:       nil,
}

// Statuses lists every known status in pipeline order.
var Statuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusAccepted,
	models.OrderStatusPacked,
	models.OrderStatusOutForDelivery,
	models.OrderStatusDelivered,
	models.OrderStatusRejected,
}

func IsKnown(s models.OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s models.OrderStatus) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// Allowed returns the statuses reachable from s in one step.
func Allowed(s models.OrderStatus) []models.OrderStatus {
	return slices.Clone(transitions[s])
}

func CanTransition(from, to models.OrderStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Transition moves o to status to and applies the side effects of that step.
// On error o is left exactly as it was.
func Transition(o *models.Order, to models.OrderStatus, reason string, now time.Time) error {

	if !CanTransition(o.Status, to) {
		return &TransitionError{From: o.Status, To: to}
	}

	reason = strings.TrimSpace(reason)
	if to == models.OrderStatusRejected && reason == "" {
		return ErrMissingRejectionReason
	}

	stamp := now

	switch to {
	case models.OrderStatusAccepted:
		o.AcceptedAt = &stamp
	case models.OrderStatusPacked:
		o.PackedAt = &stamp
	case models.OrderStatusDelivered:
		o.DeliveredAt = &stamp
		o.PaymentStatus = models.PaymentStatusCompleted
	case models.OrderStatusRejected:
		o.RejectionReason = reason
	}

	o.Status = to
	o.UpdatedAt = now

	return nil
}

func Accept(o *models.Order, now time.Time) error {
	return Transition(o, models.OrderStatusAccepted, "", now)
}

func Reject(o *models.Order, reason string, now time.Time) error {
	return Transition(o, models.OrderStatusRejected, reason, now)
}

func Pack(o *models.Order, now time.Time) error {
	return Transition(o, models.OrderStatusPacked, "", now)
}

func MarkOutForDelivery(o *models.Order, now time.Time) error {
	return Transition(o, models.OrderStatusOutForDelivery, "", now)
}

func Deliver(o *models.Order, now time.Time) error {
	return Transition(o, models.OrderStatusDelivered, "", now)
}

var statusText = map[models.OrderStatus]string{
	models.OrderStatusPending:        "Order Placed",
	models.OrderStatusAccepted:       "Accepted",
	models.OrderStatusPacked:         "Packed",
	models.OrderStatusOutForDelivery: "Out for Delivery",
	models.OrderStatusDelivered:      "Delivered",
	models.OrderStatusRejected:       "Rejected",
}

// StatusText is the customer-facing label for a status.
func StatusText(s models.OrderStatus) string {
	if text, ok := statusText[s]; ok {
		return text
	}

	return string(s)
}
