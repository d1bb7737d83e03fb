package kv

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// maxUpdateAttempts bounds the optimistic WATCH/MULTI retries of Update.
const maxUpdateAttempts = 10

// ErrTooManyRetries is returned when Update keeps losing the race for a key.
var ErrTooManyRetries = errors.New("kv: too many concurrent updates")

// RedisStore keeps each value in a Redis string under namespace+key.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

// NewRedisStore wraps rdb. namespace is prepended to every key (for example
// "agrostock:") and stripped again by Keys.
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	return &RedisStore{rdb: rdb, namespace: namespace}
}

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.rdb.Get(ctx, s.namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		return ErrNilValue
	}
	if err := s.rdb.Set(ctx, s.namespace+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.namespace+key).Err(); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update watches the key and commits with MULTI/EXEC, retrying when another
// client modified the key in between.
func (s *RedisStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	full := s.namespace + key

	txf := func(tx *redis.Tx) error {
		old, err := tx.Get(ctx, full).Bytes()
		if errors.Is(err, redis.Nil) {
			old = nil
		} else if err != nil {
			return fmt.Errorf("failed to get kv[%s]: %w", key, err)
		}

		value, err := fn(old)
		if err != nil {
			return err
		}
		if value == nil {
			return ErrNilValue
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, full, value, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.rdb.Watch(ctx, txf, full)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to update kv[%s]: %w", key, ErrTooManyRetries)
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	// SCAN may return a key more than once.
	seen := make(map[string]struct{})
	iter := s.rdb.Scan(ctx, 0, escapeGlob(s.namespace+prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		seen[iter.Val()[len(s.namespace):]] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list kv keys: %w", err)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// escapeGlob quotes the characters that are special in Redis MATCH patterns.
func escapeGlob(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
