// Package ratelimit throttles the endpoints that spend Gemini quota.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Config is the number of requests allowed per window.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// DefaultConfig allows 20 requests per minute.
func DefaultConfig() Config {
	return Config{MaxRequests: 20, Window: time.Minute}
}

func (c Config) validate() error {
	if c.MaxRequests <= 0 {
		return errors.New("rate limit: max requests must be positive")
	}
	if c.Window <= 0 {
		return errors.New("rate limit: window must be positive")
	}
	return nil
}

// RedisLimiter is a fixed-window counter shared by every server instance.
type RedisLimiter struct {
	rdb    *redis.Client
	cfg    Config
	prefix string
}

// NewRedisLimiter uses prefix to namespace its keys.
func NewRedisLimiter(rdb *redis.Client, cfg Config, prefix string) (*RedisLimiter, error) {
	if rdb == nil {
		return nil, errors.New("rate limit: Redis client not available")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RedisLimiter{rdb: rdb, cfg: cfg, prefix: prefix}, nil
}

// Allow increments the caller's counter for the current window.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("rate:%s:%s", rl.prefix, key)

	// EXPIRE NX rides along with every INCR, so a counter can never be
	// left without a TTL.
	var count *redis.IntCmd
	_, err := rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rl.cfg.Window)
		return nil
	})
	if err != nil {
		return false, err
	}

	return count.Val() <= int64(rl.cfg.MaxRequests), nil
}

// MemoryLimiter is a per-key token bucket local to this process. Idle
// visitors expire after three windows.
type MemoryLimiter struct {
	cfg      Config
	limit    rate.Limit
	mu       sync.Mutex
	visitors *gocache.Cache
}

// NewMemoryLimiter refills MaxRequests tokens evenly over each window.
func NewMemoryLimiter(cfg Config) (*MemoryLimiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	expiry := cfg.Window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &MemoryLimiter{
		cfg:      cfg,
		limit:    rate.Every(cfg.Window / time.Duration(cfg.MaxRequests)),
		visitors: gocache.New(expiry, time.Minute),
	}, nil
}

// Allow never returns an error.
func (ml *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	ml.mu.Lock()
	var lim *rate.Limiter
	if v, ok := ml.visitors.Get(key); ok {
		lim = v.(*rate.Limiter)
	} else {
		lim = rate.NewLimiter(ml.limit, ml.cfg.MaxRequests)
	}
	// refresh the idle expiry on every hit
	ml.visitors.SetDefault(key, lim)
	ml.mu.Unlock()

	return lim.Allow(), nil
}
