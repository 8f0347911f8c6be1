package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisFeed carries order changes over Redis Pub/Sub, one channel per shop.
type RedisFeed struct {
	client *redis.Client
	lister OrderLister
	prefix string
	logger *slog.Logger
}

func NewRedisFeed(client *redis.Client, lister OrderLister, prefix string) *RedisFeed {
	return &RedisFeed{
		client: client,
		lister: lister,
		prefix: prefix,
		logger: slog.Default().With(slog.String("component", "order_feed")),
	}
}

func (f *RedisFeed) Channel(shopID uuid.UUID) string {
	return fmt.Sprintf("%s:shop:%s", f.prefix, shopID)
}

func (f *RedisFeed) Publish(ctx context.Context, shopID uuid.UUID, change Change) error {

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode order change: %w", err)
	}

	if err := f.client.Publish(ctx, f.Channel(shopID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish order change: %w", err)
	}

	return nil
}

// Subscribe listens on the shop channel before reading the snapshot so no change
// published in between is lost. Such a change may then also appear in the snapshot.
func (f *RedisFeed) Subscribe(ctx context.Context, shopID uuid.UUID) (Subscription, error) {

	channel := f.Channel(shopID)

	pubsub := f.client.Subscribe(ctx, channel)

	// Wait for subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	snapshot, err := f.lister.ListOrdersByShop(ctx, shopID)
	if err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to load order snapshot: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)
	messages := pubsub.Channel()

	recv := func(ctx context.Context) (Change, error) {
		for {
			select {
			case <-ctx.Done():
				return Change{}, ctx.Err()
			case msg, ok := <-messages:
				if !ok {
					return Change{}, ErrFeedClosed
				}

				var change Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					f.logger.Warn("Skipping malformed order change", slog.String("channel", channel), slog.String("error", err.Error()))
					continue
				}

				return change, nil
			}
		}
	}

	go sub.run(subCtx, snapshot, recv, func() {
		_ = pubsub.Close()
		cancel()
	})

	return sub, nil
}
