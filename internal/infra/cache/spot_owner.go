// Package cache holds Redis-backed decorators for read paths.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"spot-booking/internal/pkg/clock"
	"spot-booking/internal/pkg/config"
	"spot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keySpotOwner        = "spot-booking:cache:spot_owner:" // + spot_id
	DefaultSpotOwnerTTL = 10 * time.Minute
)

// SpotOwnerCacheConfig mirrors the REDIS_* owner cache settings.
type SpotOwnerCacheConfig struct {
	TTL            time.Duration
	DisableOnError bool          // stop using Redis after a failed command
	RetryAfter     time.Duration // how long it stays off; zero means until restart
}

func SpotOwnerCacheConfigFrom(cfg config.RedisConfig) SpotOwnerCacheConfig {
	return SpotOwnerCacheConfig{
		TTL:            cfg.OwnerTTL,
		DisableOnError: cfg.DisableOnError,
		RetryAfter:     cfg.RetryAfter,
	}
}

// SpotOwnerCache caches spot owners in front of a SpotDirectory. Redis
// failures fall back to the wrapped directory.
type SpotOwnerCache struct {
	next   shared.SpotDirectory
	client *redis.Client
	cfg    SpotOwnerCacheConfig
	clock  clock.Clock
	logger *slog.Logger

	mu            sync.RWMutex
	disabled      bool
	disabledUntil time.Time
}

// NewSpotOwnerCache wraps next. A nil client yields a pass-through cache.
func NewSpotOwnerCache(next shared.SpotDirectory, client *redis.Client, cfg SpotOwnerCacheConfig, clk clock.Clock) *SpotOwnerCache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSpotOwnerTTL
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &SpotOwnerCache{
		next:   next,
		client: client,
		cfg:    cfg,
		clock:  clk,
		logger: slog.Default().With("component", "spot_owner_cache"),
	}
}

// NewRedisClient connects to cfg.Addr. It returns nil when no address is
// configured or the server is unreachable.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, running without spot owner cache", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("redis spot owner cache initialized", "addr", cfg.Addr)
	return client
}

func (c *SpotOwnerCache) IsAvailable() bool {
	if c.client == nil {
		return false
	}

	c.mu.RLock()
	disabled, until := c.disabled, c.disabledUntil
	c.mu.RUnlock()
	if !disabled {
		return true
	}
	if until.IsZero() || c.clock.Now().Before(until) {
		return false
	}

	c.mu.Lock()
	if c.disabled && !c.clock.Now().Before(c.disabledUntil) {
		c.disabled = false
		c.logger.Info("re-enabling spot owner cache")
	}
	c.mu.Unlock()
	return true
}

func (c *SpotOwnerCache) OwnerOf(ctx context.Context, spotID uuid.UUID) (uuid.UUID, error) {
	key := keySpotOwner + spotID.String()

	if c.IsAvailable() {
		raw, err := c.client.Get(ctx, key).Result()
		switch {
		case err == nil:
			if owner, perr := uuid.Parse(raw); perr == nil {
				return owner, nil
			}
			c.logger.Debug("discarding malformed cached owner", "key", key)
		case !errors.Is(err, redis.Nil):
			c.handleError(ctx, err, "get")
		}
	}

	owner, err := c.next.OwnerOf(ctx, spotID)
	if err != nil {
		return uuid.Nil, err
	}

	if c.IsAvailable() {
		if err := c.client.Set(ctx, key, owner.String(), c.cfg.TTL).Err(); err != nil {
			c.handleError(ctx, err, "set")
		}
	}
	return owner, nil
}

// handleError never disables the cache for the caller's own cancelled or
// expired context.
func (c *SpotOwnerCache) handleError(ctx context.Context, err error, operation string) {
	c.logger.Debug("cache operation failed", "operation", operation, "error", err.Error())

	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	if !c.cfg.DisableOnError {
		return
	}

	c.mu.Lock()
	c.disabled = true
	if c.cfg.RetryAfter > 0 {
		c.disabledUntil = c.clock.Now().Add(c.cfg.RetryAfter)
	} else {
		c.disabledUntil = time.Time{}
	}
	c.mu.Unlock()
	c.logger.Warn("disabling spot owner cache due to Redis error", "retry_after", c.cfg.RetryAfter)
}
