// Package feed streams per-shop order changes. A subscription first delivers the
// shop's full order set as one Initial batch, then every later change as it is
// published. Delivery is at-least-once; consumers must tolerate repeats.
package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/google/uuid"
)

type ChangeType string

const (
	Added    ChangeType = "added"
	Modified ChangeType = "modified"
	Removed  ChangeType = "removed"
)

var ErrFeedClosed = errors.New("order feed closed unexpectedly")

type Change struct {
	Type  ChangeType   `json:"type"`
	Order models.Order `json:"order"`
}

type Batch struct {
	Initial bool
	Changes []Change
}

// Subscription is a live, non-restartable stream. C is closed when the stream
// ends; Err then reports why, or nil if the subscriber closed it.
type Subscription interface {
	C() <-chan Batch
	Err() error
	Close() error
}

type Source interface {
	Subscribe(ctx context.Context, shopID uuid.UUID) (Subscription, error)
}

type Publisher interface {
	Publish(ctx context.Context, shopID uuid.UUID, change Change) error
}

// OrderLister loads a shop's current orders, newest first.
type OrderLister interface {
	ListOrdersByShop(ctx context.Context, shopID uuid.UUID) ([]models.Order, error)
}

type subscription struct {
	ch        chan Batch
	done      chan struct{}
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu  sync.Mutex
	err error
}

const subscriptionBuffer = 16

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{
		ch:     make(chan Batch, subscriptionBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

func (s *subscription) C() <-chan Batch {
	return s.ch
}

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close stops delivery and waits for the pump to exit.
func (s *subscription) Close() error {
	s.closeOnce.Do(s.cancel)
	<-s.done

	return nil
}

func (s *subscription) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// run owns s.ch. recv blocks for the next change and returns an error once the
// stream is over; errors seen after cancellation are not recorded.
func (s *subscription) run(ctx context.Context, snapshot []models.Order, recv func(context.Context) (Change, error), cleanup func()) {

	defer close(s.done)
	defer close(s.ch)
	defer cleanup()

	initial := Batch{Initial: true, Changes: make([]Change, 0, len(snapshot))}
	for _, order := range snapshot {
		initial.Changes = append(initial.Changes, Change{Type: Added, Order: order})
	}

	if !s.deliver(ctx, initial) {
		return
	}

	for {
		change, err := recv(ctx)
		if err != nil {
			if ctx.Err() == nil {
				s.fail(err)
			}
			return
		}

		if !s.deliver(ctx, Batch{Changes: []Change{change}}) {
			return
		}
	}
}

func (s *subscription) deliver(ctx context.Context, batch Batch) bool {
	select {
	case <-ctx.Done():
		return false
	case s.ch <- batch:
		return true
	}
}
