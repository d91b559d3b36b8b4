package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Views stores rendered read views until they are invalidated.
//
// Every Invalidate bumps a generation counter. A reader takes the generation
// before loading from the store and passes it to Set, which drops the write
// when an invalidation happened in between, so a view loaded before a commit
// is never stored after it.
type Views interface {
	// Get decodes the view stored under key into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, key string, value any, gen int64) error
	Invalidate(ctx context.Context, keys ...string) error
}

// NopViews never stores anything. It is used when no Redis is configured.
type NopViews struct{}

func (NopViews) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopViews) Generation(context.Context) (int64, error) { return 0, nil }
func (NopViews) Set(context.Context, string, any, int64) error { return nil }
func (NopViews) Invalidate(context.Context, ...string) error { return nil }

const (
	keyPrefix     = "gamevault:view:"
	generationKey = "gamevault:generation"
)

// RedisViews keeps JSON encoded views in Redis with a TTL.
type RedisViews struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisViews connects to the Redis instance at url (redis://...) and
// verifies the connection.
func NewRedisViews(ctx context.Context, url string, ttl time.Duration) (*RedisViews, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisViewsWithClient(client, ttl), nil
}

func NewRedisViewsWithClient(client *redis.Client, ttl time.Duration) *RedisViews {
	return &RedisViews{client: client, ttl: ttl}
}

func (v *RedisViews) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := v.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode view %s: %w", key, err)
	}
	return true, nil
}

func (v *RedisViews) Generation(ctx context.Context) (int64, error) {
	gen, err := v.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores value under key unless the generation moved past gen. A lost
// race is not an error: the view is simply rebuilt on the next read.
func (v *RedisViews) Set(ctx context.Context, key string, value any, gen int64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode view %s: %w", key, err)
	}

	err = v.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyPrefix+key, data, v.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate deletes keys and bumps the generation in one transaction.
func (v *RedisViews) Invalidate(ctx context.Context, keys ...string) error {
	_, err := v.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(keys) > 0 {
			prefixed := make([]string, len(keys))
			for i, k := range keys {
				prefixed[i] = keyPrefix + k
			}
			pipe.Del(ctx, prefixed...)
		}
		pipe.Incr(ctx, generationKey)
		return nil
	})
	return err
}

func (v *RedisViews) Close() error {
	return v.client.Close()
}
