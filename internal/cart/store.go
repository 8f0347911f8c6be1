package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cache"
	"github.com/google/uuid"
)

// Store persists one cart blob per owner.
type Store interface {
	Load(ctx context.Context, ownerID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, ownerID uuid.UUID, c *Cart) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
}

type cacheStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCacheStore(c cache.Cache, ttl time.Duration) Store {
	return &cacheStore{cache: c, ttl: ttl}
}

// Load returns an empty cart when the owner has none stored.
func (s *cacheStore) Load(ctx context.Context, ownerID uuid.UUID) (*Cart, error) {

	c := New()

	found, err := s.cache.Get(ctx, cache.Key(cache.CartKeyPrefix, ownerID.String()), c)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if !found {
		return New(), nil
	}

	if c.Items == nil {
		c.Items = []Item{}
	}

	return c, nil
}

// Save drops the stored blob when the cart is empty so a cleared cart and a missing cart look the same.
func (s *cacheStore) Save(ctx context.Context, ownerID uuid.UUID, c *Cart) error {

	if c.IsEmpty() {
		return s.Delete(ctx, ownerID)
	}

	if err := s.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, ownerID.String()), c, s.ttl); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (s *cacheStore) Delete(ctx context.Context, ownerID uuid.UUID) error {

	if err := s.cache.Delete(ctx, cache.Key(cache.CartKeyPrefix, ownerID.String())); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
