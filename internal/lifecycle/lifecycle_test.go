package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/lifecycle"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder() *models.Order {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	return &models.Order{
		ID:            uuid.New(),
		OrderID:       "TDN4821",
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: models.PaymentMethodCOD,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestTransitionTable(t *testing.T) {
	allowed := map[models.OrderStatus][]models.OrderStatus{
		models.OrderStatusPending:        {models.OrderStatusAccepted, models.OrderStatusRejected},
		models.OrderStatusAccepted:       {models.OrderStatusPacked},
		models.OrderStatusPacked:         {models.OrderStatusOutForDelivery},
		models.OrderStatusOutForDelivery: {models.OrderStatusDelivered},
	}

	for _, from := range lifecycle.Statuses {
		for _, to := range lifecycle.Statuses {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}

			assert.Equal(t, expected, lifecycle.CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.True(t, lifecycle.IsTerminal(models.OrderStatusDelivered))
	assert.True(t, lifecycle.IsTerminal(models.OrderStatusRejected))
	assert.False(t, lifecycle.IsTerminal(models.OrderStatusPending))
	assert.False(t, lifecycle.IsTerminal("shipped"))
	assert.False(t, lifecycle.IsKnown("shipped"))
	assert.Equal(t, []models.OrderStatus{models.OrderStatusPacked}, lifecycle.Allowed(models.OrderStatusAccepted))
}

func TestInvalidTransitionLeavesOrderUnchanged(t *testing.T) {
	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	for _, from := range lifecycle.Statuses {
		for _, to := range lifecycle.Statuses {
			if lifecycle.CanTransition(from, to) {
				continue
			}

			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				order := pendingOrder()
				order.Status = from
				before := *order

				err := lifecycle.Transition(order, to, "reason", now)

				require.Error(t, err)
				assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

				var transitionErr *lifecycle.TransitionError
				require.True(t, errors.As(err, &transitionErr))
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, to, transitionErr.To)
				assert.Contains(t, err.Error(), string(from))
				assert.Contains(t, err.Error(), string(to))

				assert.Equal(t, before, *order)
			})
		}
	}
}

func TestHappyPath(t *testing.T) {
	order := pendingOrder()
	t0 := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	require.NoError(t, lifecycle.Accept(order, t0))
	assert.Equal(t, models.OrderStatusAccepted, order.Status)
	require.NotNil(t, order.AcceptedAt)
	assert.Equal(t, t0, *order.AcceptedAt)
	assert.Equal(t, t0, order.UpdatedAt)

	t1 := t0.Add(10 * time.Minute)
	require.NoError(t, lifecycle.Pack(order, t1))
	assert.Equal(t, models.OrderStatusPacked, order.Status)
	require.NotNil(t, order.PackedAt)
	assert.Equal(t, t1, *order.PackedAt)

	t2 := t1.Add(10 * time.Minute)
	require.NoError(t, lifecycle.MarkOutForDelivery(order, t2))
	assert.Equal(t, models.OrderStatusOutForDelivery, order.Status)
	assert.Equal(t, t2, order.UpdatedAt)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)

	t3 := t2.Add(20 * time.Minute)
	require.NoError(t, lifecycle.Deliver(order, t3))
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, t3, *order.DeliveredAt)
	assert.Equal(t, t3, order.UpdatedAt)

	err := lifecycle.Pack(order, t3.Add(time.Minute))
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
	assert.Equal(t, t3, order.UpdatedAt)
}

func TestReject(t *testing.T) {
	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	t.Run("Stores the reason and blocks later transitions", func(t *testing.T) {
		order := pendingOrder()

		require.NoError(t, lifecycle.Reject(order, "  out of stock ", now))
		assert.Equal(t, models.OrderStatusRejected, order.Status)
		assert.Equal(t, "out of stock", order.RejectionReason)
		assert.Equal(t, now, order.UpdatedAt)
		assert.Nil(t, order.AcceptedAt)

		err := lifecycle.Accept(order, now.Add(time.Minute))
		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, models.OrderStatusRejected, order.Status)
	})

	t.Run("Requires a non-empty reason", func(t *testing.T) {
		for _, reason := range []string{"", "   "} {
			order := pendingOrder()
			before := *order

			err := lifecycle.Reject(order, reason, now)

			assert.ErrorIs(t, err, lifecycle.ErrMissingRejectionReason)
			assert.Equal(t, before, *order)
		}
	})

	t.Run("Cannot reject once accepted", func(t *testing.T) {
		order := pendingOrder()
		require.NoError(t, lifecycle.Accept(order, now))

		err := lifecycle.Reject(order, "changed my mind", now)

		assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Empty(t, order.RejectionReason)
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Order Placed", lifecycle.StatusText(models.OrderStatusPending))
	assert.Equal(t, "Out for Delivery", lifecycle.StatusText(models.OrderStatusOutForDelivery))
	assert.Equal(t, "Rejected", lifecycle.StatusText(models.OrderStatusRejected))
	assert.Equal(t, "mystery", lifecycle.StatusText("mystery"))
}
