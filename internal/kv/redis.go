package kv

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/go-redis/redis/v8"
)

// RedisStore is an alternative substrate for running against a local
// redis instance instead of the sqlite file.
type RedisStore struct {
	conn *redis.Client
}

func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(options)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisStore{conn: client}, nil
}

func (store *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := store.conn.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return value, true, nil
}

func (store *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := store.conn.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

func (store *RedisStore) DeleteKeys(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := store.conn.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete keys %v: %w", keys, err)
	}
	return nil
}
