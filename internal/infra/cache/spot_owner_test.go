//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"spot-booking/internal/infra/cache"
	"spot-booking/internal/pkg/clock"
	"spot-booking/internal/pkg/config"
	sharedmock "spot-booking/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const keyPrefix = "spot-booking:cache:spot_owner:"

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client, *sharedmock.MockSpotDirectory) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client, sharedmock.NewMockSpotDirectory(gomock.NewController(t))
}

var cacheConfig = cache.SpotOwnerCacheConfig{
	TTL:            time.Minute,
	DisableOnError: true,
	RetryAfter:     30 * time.Second,
}

func newCache(next *sharedmock.MockSpotDirectory, client *redis.Client) (*cache.SpotOwnerCache, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2030, 11, 1, 9, 0, 0, 0, time.UTC))
	return cache.NewSpotOwnerCache(next, client, cacheConfig, clk), clk
}

func TestSpotOwnerCache_OwnerOf(t *testing.T) {
	ctx := context.Background()

	t.Run("miss loads from directory then serves from redis", func(t *testing.T) {
		mr, client, next := setup(t)
		c, _ := newCache(next, client)
		spotID, ownerID := uuid.New(), uuid.New()

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil).Times(1)

		first, err := c.OwnerOf(ctx, spotID)
		require.NoError(t, err)
		second, err := c.OwnerOf(ctx, spotID)
		require.NoError(t, err)

		assert.Equal(t, ownerID, first)
		assert.Equal(t, ownerID, second)
		stored, err := mr.Get(keyPrefix + spotID.String())
		require.NoError(t, err)
		assert.Equal(t, ownerID.String(), stored)
		assert.Equal(t, time.Minute, mr.TTL(keyPrefix+spotID.String()))
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		mr, client, next := setup(t)
		c, _ := newCache(next, client)
		spotID, ownerID := uuid.New(), uuid.New()

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil).Times(2)

		_, err := c.OwnerOf(ctx, spotID)
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)
		_, err = c.OwnerOf(ctx, spotID)
		require.NoError(t, err)
	})

	t.Run("malformed entry is replaced", func(t *testing.T) {
		mr, client, next := setup(t)
		c, _ := newCache(next, client)
		spotID, ownerID := uuid.New(), uuid.New()
		require.NoError(t, mr.Set(keyPrefix+spotID.String(), "not-a-uuid"))

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil)

		got, err := c.OwnerOf(ctx, spotID)

		require.NoError(t, err)
		assert.Equal(t, ownerID, got)
		stored, _ := mr.Get(keyPrefix + spotID.String())
		assert.Equal(t, ownerID.String(), stored)
		assert.True(t, c.IsAvailable())
	})

	t.Run("directory errors are not cached", func(t *testing.T) {
		mr, client, next := setup(t)
		c, _ := newCache(next, client)
		spotID := uuid.New()
		notFound := errors.New("spot not found")

		next.EXPECT().OwnerOf(ctx, spotID).Return(uuid.Nil, notFound)

		_, err := c.OwnerOf(ctx, spotID)

		require.ErrorIs(t, err, notFound)
		assert.False(t, mr.Exists(keyPrefix+spotID.String()))
	})

	t.Run("redis outage falls back and disables cache until retry", func(t *testing.T) {
		mr, client, next := setup(t)
		c, clk := newCache(next, client)
		spotID, ownerID := uuid.New(), uuid.New()
		mr.Close()

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil).Times(3)

		for range 2 {
			got, err := c.OwnerOf(ctx, spotID)
			require.NoError(t, err)
			assert.Equal(t, ownerID, got)
		}
		assert.False(t, c.IsAvailable())

		require.NoError(t, mr.Restart())
		clk.Set(clk.Now().Add(29 * time.Second))
		assert.False(t, c.IsAvailable())

		clk.Set(clk.Now().Add(time.Second))
		assert.True(t, c.IsAvailable())
		_, err := c.OwnerOf(ctx, spotID)
		require.NoError(t, err)
		assert.True(t, mr.Exists(keyPrefix+spotID.String()))
	})

	t.Run("zero retry keeps cache off", func(t *testing.T) {
		mr, client, next := setup(t)
		clk := clock.NewMockClock(time.Date(2030, 11, 1, 9, 0, 0, 0, time.UTC))
		c := cache.NewSpotOwnerCache(next, client, cache.SpotOwnerCacheConfig{DisableOnError: true}, clk)
		spotID := uuid.New()
		mr.Close()

		next.EXPECT().OwnerOf(ctx, spotID).Return(uuid.New(), nil)

		_, err := c.OwnerOf(ctx, spotID)
		require.NoError(t, err)
		clk.Set(clk.Now().Add(24 * time.Hour))
		assert.False(t, c.IsAvailable())
	})

	t.Run("errors keep cache on when disabling is off", func(t *testing.T) {
		mr, client, next := setup(t)
		clk := clock.NewMockClock(time.Date(2030, 11, 1, 9, 0, 0, 0, time.UTC))
		c := cache.NewSpotOwnerCache(next, client, cache.SpotOwnerCacheConfig{TTL: time.Minute}, clk)
		spotID, ownerID := uuid.New(), uuid.New()
		mr.Close()

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil)

		got, err := c.OwnerOf(ctx, spotID)

		require.NoError(t, err)
		assert.Equal(t, ownerID, got)
		assert.True(t, c.IsAvailable())
	})

	t.Run("caller context errors keep cache on", func(t *testing.T) {
		expired, cancelExpired := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		t.Cleanup(cancelExpired)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		for name, cctx := range map[string]context.Context{"cancelled": cancelled, "deadline exceeded": expired} {
			t.Run(name, func(t *testing.T) {
				mr, client, next := setup(t)
				c, _ := newCache(next, client)
				spotID, ownerID := uuid.New(), uuid.New()

				next.EXPECT().OwnerOf(gomock.Any(), spotID).Return(ownerID, nil)

				got, err := c.OwnerOf(cctx, spotID)

				require.NoError(t, err)
				assert.Equal(t, ownerID, got)
				assert.True(t, c.IsAvailable())
				assert.False(t, mr.Exists(keyPrefix+spotID.String()))
			})
		}
	})

	t.Run("nil client passes through", func(t *testing.T) {
		_, _, next := setup(t)
		c := cache.NewSpotOwnerCache(next, nil, cache.SpotOwnerCacheConfig{}, clock.NewRealClock())
		spotID, ownerID := uuid.New(), uuid.New()

		next.EXPECT().OwnerOf(ctx, spotID).Return(ownerID, nil)

		got, err := c.OwnerOf(ctx, spotID)

		require.NoError(t, err)
		assert.Equal(t, ownerID, got)
		assert.False(t, c.IsAvailable())
	})
}

func TestNewRedisClient(t *testing.T) {
	t.Run("no address disables redis", func(t *testing.T) {
		assert.Nil(t, cache.NewRedisClient(config.RedisConfig{}))
	})

	t.Run("reachable server yields a client", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client := cache.NewRedisClient(config.RedisConfig{Addr: mr.Addr()})

		require.NotNil(t, client)
		t.Cleanup(func() { _ = client.Close() })
	})

	t.Run("unreachable server yields nil", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		assert.Nil(t, cache.NewRedisClient(config.RedisConfig{Addr: addr}))
	})
}
