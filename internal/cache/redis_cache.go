package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache stores values as JSON strings. Entries written with a
// non-positive ttl fall back to cfg.DefaultTTL so nothing is kept forever.
func NewRedisCache(client redis.Cmdable, cfg *config.CacheConfig) Cache {
	return &redisCache{client: client, ttl: cfg.DefaultTTL}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %q: %w", key, err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		// a stale layout after a deploy is a miss, not an outage
		r.client.Del(ctx, key)
		return false, fmt.Errorf("cache decode %q: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.ttl
	}

	return wrap("set", key, r.client.Set(ctx, key, raw, ttl).Err())
}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	return wrap("delete", fmt.Sprint(keys), r.client.Del(ctx, keys...).Err())
}

// Close does nothing. The client is shared with the rate limiter and the order feed.
func (r *redisCache) Close() error {
	return nil
}

func wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("cache %s %q: %w", op, key, err)
}
