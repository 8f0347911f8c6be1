package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
)

// Cache stores JSON-encoded values by key. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const (
	CartKeyPrefix        = "cart"
	ShopKeyPrefix        = "shop"
	ActiveShopsKeyPrefix = "shops:active"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// Fetch is read-through: a hit is returned as is, a miss calls load and
// stores its result. Cache failures are logged and never fail the read.
func Fetch[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {

	logger := middleware.LoggerFromContext(ctx)

	var value T
	found, err := c.Get(ctx, key, &value)
	if err != nil {
		logger.Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if found {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return value, nil
}
