package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DurableTier is the shared, persistent cache level. Implementations carry
// their own expiry policy; entries written with a TTL expire independent of
// any run. The redis implementation is the production tier; tests substitute
// in-memory fakes.
type DurableTier interface {
	Get(ctx context.Context, key string) (string, bool, error)
	MGet(ctx context.Context, keys []string) ([]*string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

type redisTier struct {
	rdb *goredis.Client
}

// NewRedisTier connects to the configured redis endpoint and verifies the
// connection with a ping. Callers treat a returned error as "run without a
// durable tier" rather than a fatal condition.
func NewRedisTier(cfg *Config) (DurableTier, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisTier{rdb: rdb}, nil
}

func (t *redisTier) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := t.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (t *redisTier) MGet(ctx context.Context, keys []string) ([]*string, error) {
	raw, err := t.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*string, len(keys))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			out[i] = &s
		}
	}
	return out, nil
}

func (t *redisTier) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return t.rdb.Set(ctx, key, value, ttl).Err()
}

func (t *redisTier) Close() error {
	return t.rdb.Close()
}
