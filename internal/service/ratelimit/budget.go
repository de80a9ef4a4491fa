package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const providerKey = "provider_calls"

// Budget caps provider calls per minute within this process.
type Budget struct {
	l         *Limiter
	perMinute int
}

func NewBudget(l *Limiter, perMinute int) *Budget {
	return &Budget{l: l, perMinute: perMinute}
}

func (b *Budget) Allow(_ context.Context) (bool, error) {
	return b.l.Allow(providerKey, float64(b.perMinute), float64(b.perMinute)/60), nil
}

// RedisBudget caps provider calls per minute across every instance sharing
// one Redis, using a fixed one-minute window counter.
type RedisBudget struct {
	cli       *redis.Client
	prefix    string
	perMinute int
	now       func() time.Time
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisBudget(cfg RedisConfig, perMinute int) *RedisBudget {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "ipocal"
	}
	return &RedisBudget{cli: rdb, prefix: prefix, perMinute: perMinute, now: time.Now}
}

// Ping checks connectivity.
func (r *RedisBudget) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx).Err()
}

func (r *RedisBudget) Allow(ctx context.Context) (bool, error) {
	window := r.now().UTC().Truncate(time.Minute).Unix()
	key := fmt.Sprintf("%s:%s:%d", r.prefix, providerKey, window)

	pipe := r.cli.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis budget: %w", err)
	}
	return incr.Val() <= int64(r.perMinute), nil
}

func (r *RedisBudget) Close() error {
	return r.cli.Close()
}
