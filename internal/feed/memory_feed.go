package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrSlowSubscriber = errors.New("subscriber fell too far behind the order feed")

const memoryInboxSize = 64

// MemoryFeed is an in-process feed for single-node deployments and tests.
// A subscriber whose inbox overflows is dropped with ErrSlowSubscriber.
type MemoryFeed struct {
	lister OrderLister

	mu   sync.Mutex
	subs map[uuid.UUID]map[*memoryInbox]struct{}
}

type memoryInbox struct {
	changes chan Change
	dropped chan struct{}
	once    sync.Once
}

func NewMemoryFeed(lister OrderLister) *MemoryFeed {
	return &MemoryFeed{
		lister: lister,
		subs:   make(map[uuid.UUID]map[*memoryInbox]struct{}),
	}
}

func (f *MemoryFeed) Publish(_ context.Context, shopID uuid.UUID, change Change) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	for inbox := range f.subs[shopID] {
		select {
		case inbox.changes <- change:
		default:
			inbox.once.Do(func() { close(inbox.dropped) })
			delete(f.subs[shopID], inbox)
		}
	}

	return nil
}

func (f *MemoryFeed) Subscribe(ctx context.Context, shopID uuid.UUID) (Subscription, error) {

	inbox := &memoryInbox{
		changes: make(chan Change, memoryInboxSize),
		dropped: make(chan struct{}),
	}

	f.mu.Lock()
	if f.subs[shopID] == nil {
		f.subs[shopID] = make(map[*memoryInbox]struct{})
	}
	f.subs[shopID][inbox] = struct{}{}
	f.mu.Unlock()

	snapshot, err := f.lister.ListOrdersByShop(ctx, shopID)
	if err != nil {
		f.remove(shopID, inbox)
		return nil, fmt.Errorf("failed to load order snapshot: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)

	recv := func(ctx context.Context) (Change, error) {
		select {
		case <-ctx.Done():
			return Change{}, ctx.Err()
		case <-inbox.dropped:
			return Change{}, ErrSlowSubscriber
		case change := <-inbox.changes:
			return change, nil
		}
	}

	go sub.run(subCtx, snapshot, recv, func() {
		f.remove(shopID, inbox)
		cancel()
	})

	return sub, nil
}

// Subscribers reports how many live subscriptions a shop has.
func (f *MemoryFeed) Subscribers(shopID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subs[shopID])
}

func (f *MemoryFeed) remove(shopID uuid.UUID, inbox *memoryInbox) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs[shopID], inbox)
	if len(f.subs[shopID]) == 0 {
		delete(f.subs, shopID)
	}
}
