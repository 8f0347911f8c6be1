package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/cache"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedShop struct {
	Name       string `json:"name"`
	OpenOrders int    `json:"open_orders"`
}

var cacheCfg = &config.CacheConfig{DefaultTTL: 10 * time.Minute}

func newMiniCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, cacheCfg), srv
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, srv := newMiniCache(t)
	ctx := t.Context()

	require.NoError(t, c.Set(ctx, "shop:1", cachedShop{Name: "Green Grocers", OpenOrders: 3}, time.Minute))

	var got cachedShop
	found, err := c.Get(ctx, "shop:1", &got)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedShop{Name: "Green Grocers", OpenOrders: 3}, got)
	assert.Equal(t, time.Minute, srv.TTL("shop:1"))

	srv.FastForward(2 * time.Minute)

	found, err = c.Get(ctx, "shop:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_DefaultTTL(t *testing.T) {
	c, srv := newMiniCache(t)

	for _, ttl := range []time.Duration{0, -time.Second} {
		require.NoError(t, c.Set(t.Context(), "shops:active:all", []cachedShop{}, ttl))
		assert.Equal(t, cacheCfg.DefaultTTL, srv.TTL("shops:active:all"))
	}
}

func TestRedisCache_UndecodableEntryIsEvicted(t *testing.T) {
	c, srv := newMiniCache(t)
	require.NoError(t, srv.Set("shop:broken", "{not json"))

	var got cachedShop
	found, err := c.Get(t.Context(), "shop:broken", &got)

	assert.False(t, found)
	assert.ErrorContains(t, err, "cache decode")
	assert.False(t, srv.Exists("shop:broken"))
}

func TestRedisCache_Delete(t *testing.T) {
	c, srv := newMiniCache(t)
	require.NoError(t, srv.Set("shop:1", "{}"))
	require.NoError(t, srv.Set("shops:active:all", "[]"))

	require.NoError(t, c.Delete(t.Context(), "shop:1", "shops:active:all"))
	assert.False(t, srv.Exists("shop:1"))
	assert.False(t, srv.Exists("shops:active:all"))

	assert.NoError(t, c.Delete(t.Context()))
}

func TestRedisCache_Errors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("Get", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("shop:1").SetErr(boom)

		var got cachedShop
		found, err := cache.NewRedisCache(client, cacheCfg).Get(t.Context(), "shop:1", &got)

		assert.False(t, found)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Set Unencodable", func(t *testing.T) {
		client, mock := redismock.NewClientMock()

		err := cache.NewRedisCache(client, cacheCfg).Set(t.Context(), "shop:1", make(chan int), time.Minute)

		assert.ErrorContains(t, err, "cache encode")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectDel("shop:1").SetErr(boom)

		err := cache.NewRedisCache(client, cacheCfg).Delete(t.Context(), "shop:1")

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFetch(t *testing.T) {
	t.Run("Miss Loads And Stores", func(t *testing.T) {
		c, srv := newMiniCache(t)
		calls := 0
		load := func(context.Context) (cachedShop, error) {
			calls++
			return cachedShop{Name: "Sharma Kirana"}, nil
		}

		first, err := cache.Fetch(t.Context(), c, "shop:2", time.Minute, load)
		require.NoError(t, err)
		second, err := cache.Fetch(t.Context(), c, "shop:2", time.Minute, load)
		require.NoError(t, err)

		assert.Equal(t, "Sharma Kirana", first.Name)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
		assert.True(t, srv.Exists("shop:2"))
	})

	t.Run("Load Error Is Not Cached", func(t *testing.T) {
		c, srv := newMiniCache(t)

		_, err := cache.Fetch(t.Context(), c, "shop:3", time.Minute, func(context.Context) (cachedShop, error) {
			return cachedShop{}, errors.New("db down")
		})

		assert.EqualError(t, err, "db down")
		assert.False(t, srv.Exists("shop:3"))
	})

	t.Run("Broken Cache Still Serves", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("shop:4").SetErr(errors.New("timeout"))
		mock.Regexp().ExpectSet("shop:4", `.*`, time.Minute).SetErr(errors.New("timeout"))

		got, err := cache.Fetch(t.Context(), cache.NewRedisCache(client, cacheCfg), "shop:4", time.Minute,
			func(context.Context) (cachedShop, error) { return cachedShop{Name: "Fresh"}, nil })

		require.NoError(t, err)
		assert.Equal(t, "Fresh", got.Name)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cart:abc", cache.Key(cache.CartKeyPrefix, "abc"))
}
