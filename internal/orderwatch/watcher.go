// Package orderwatch keeps a live, bucketed view of one shop's orders on top of
// an order feed and raises a single alert for every genuinely new pending order.
package orderwatch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/feed"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/metrics"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/google/uuid"
)

// Board partitions a shop's orders by lifecycle bucket, newest first.
type Board struct {
	ShopID         uuid.UUID      `json:"shop_id"`
	Pending        []models.Order `json:"pending"`
	Accepted       []models.Order `json:"accepted"`
	Packed         []models.Order `json:"packed"`
	OutForDelivery []models.Order `json:"out_for_delivery"`
	Completed      []models.Order `json:"completed"`
	PendingCount   int            `json:"pending_count"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type Option func(*options)

type options struct {
	onNewOrder func(models.Order)
	onUpdate   func(Board)
	onError    func(error)
	now        func() time.Time
}

func WithNewOrderHandler(fn func(models.Order)) Option {
	return func(o *options) { o.onNewOrder = fn }
}

func WithUpdateHandler(fn func(Board)) Option {
	return func(o *options) { o.onUpdate = fn }
}

func WithErrorHandler(fn func(error)) Option {
	return func(o *options) { o.onError = fn }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Watcher is bound to one subscription. After a feed error it stays frozen on
// the last good board; watch again to recover.
// Callbacks run on the watcher goroutine and must not call Close.
type Watcher struct {
	shopID uuid.UUID
	sub    feed.Subscription
	opts   options

	mu     sync.RWMutex
	orders []models.Order
	seen   map[uuid.UUID]struct{}
	loaded bool
	err    error

	// held while a callback runs so Close can fence them off
	callbackMu sync.Mutex
	closed     bool

	closeOnce sync.Once
	done      chan struct{}
}

func Watch(ctx context.Context, source feed.Source, shopID uuid.UUID, opts ...Option) (*Watcher, error) {

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	sub, err := source.Subscribe(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to watch orders for shop %s: %w", shopID, err)
	}

	w := &Watcher{
		shopID: shopID,
		sub:    sub,
		opts:   o,
		seen:   make(map[uuid.UUID]struct{}),
		done:   make(chan struct{}),
	}

	metrics.WatcherOpened()

	go w.run()

	return w, nil
}

func (w *Watcher) run() {

	defer close(w.done)
	defer metrics.WatcherClosed()

	for batch := range w.sub.C() {
		fresh := w.apply(batch)
		board := w.Board()

		w.emit(func() {
			if w.opts.onNewOrder != nil {
				for _, order := range fresh {
					metrics.NewOrderNotified()
					w.opts.onNewOrder(order)
				}
			}
			if w.opts.onUpdate != nil {
				w.opts.onUpdate(board)
			}
		})
	}

	err := w.sub.Err()
	if err == nil {
		return
	}

	w.mu.Lock()
	w.err = err
	w.mu.Unlock()

	w.emit(func() {
		if w.opts.onError != nil {
			w.opts.onError(err)
		}
	})
}

// apply folds a batch into the order set and returns the orders that warrant a
// new-order alert.
func (w *Watcher) apply(batch feed.Batch) []models.Order {

	w.mu.Lock()
	defer w.mu.Unlock()

	var fresh []models.Order

	for _, change := range batch.Changes {
		order := change.Order

		switch change.Type {
		case feed.Added, feed.Modified:
			_, seen := w.seen[order.ID]
			if change.Type == feed.Added && w.loaded && !batch.Initial && !seen && order.Status == models.OrderStatusPending {
				fresh = append(fresh, order)
			}
			w.seen[order.ID] = struct{}{}
			w.upsert(order)
		case feed.Removed:
			w.remove(order.ID)
		}
	}

	if batch.Initial {
		w.loaded = true
	}

	sort.SliceStable(w.orders, func(i, j int) bool {
		return w.orders[i].CreatedAt.After(w.orders[j].CreatedAt)
	})

	return fresh
}

func (w *Watcher) upsert(order models.Order) {
	for i := range w.orders {
		if w.orders[i].ID == order.ID {
			w.orders[i] = order
			return
		}
	}
	w.orders = append(w.orders, order)
}

func (w *Watcher) remove(id uuid.UUID) {
	for i := range w.orders {
		if w.orders[i].ID == id {
			w.orders = append(w.orders[:i], w.orders[i+1:]...)
			return
		}
	}
}

func (w *Watcher) emit(fn func()) {
	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()

	if w.closed {
		return
	}

	fn()
}

func (w *Watcher) Board() Board {

	w.mu.RLock()
	defer w.mu.RUnlock()

	board := Board{
		ShopID:         w.shopID,
		Pending:        []models.Order{},
		Accepted:       []models.Order{},
		Packed:         []models.Order{},
		OutForDelivery: []models.Order{},
		Completed:      []models.Order{},
		UpdatedAt:      w.opts.now(),
	}

	for _, order := range w.orders {
		switch order.Status {
		case models.OrderStatusPending:
			board.Pending = append(board.Pending, order)
		case models.OrderStatusAccepted:
			board.Accepted = append(board.Accepted, order)
		case models.OrderStatusPacked:
			board.Packed = append(board.Packed, order)
		case models.OrderStatusOutForDelivery:
			board.OutForDelivery = append(board.OutForDelivery, order)
		case models.OrderStatusDelivered, models.OrderStatusRejected:
			board.Completed = append(board.Completed, order)
		}
	}

	board.PendingCount = len(board.Pending)

	return board
}

func (w *Watcher) PendingCount() int {

	w.mu.RLock()
	defer w.mu.RUnlock()

	count := 0
	for _, order := range w.orders {
		if order.Status == models.OrderStatusPending {
			count++
		}
	}

	return count
}

// Loaded reports whether the initial snapshot has been applied.
func (w *Watcher) Loaded() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.loaded
}

func (w *Watcher) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.err
}

// Done is closed once the watcher has stopped, either through Close or a feed error.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops the subscription. No callback runs after Close returns.
func (w *Watcher) Close() error {

	var err error

	w.closeOnce.Do(func() {
		w.callbackMu.Lock()
		w.closed = true
		w.callbackMu.Unlock()

		err = w.sub.Close()
		<-w.done
	})

	return err
}
