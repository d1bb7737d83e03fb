// Package kv implements the string-keyed persistence collaborator behind the
// credential and inventory stores. Values are opaque bytes (JSON documents in
// practice). Backends: SQLite, PostgreSQL, Redis and any viant/afs URL.
package kv

import (
	"context"
	"errors"
)

// Store is a key-value store.
//
// Contract:
//   - Get returns (nil, nil) for an absent key.
//   - Delete of an absent key is not an error.
//   - Update atomically replaces the value of key with fn(old); old is nil
//     when the key is absent. If fn returns an error nothing is written and
//     that error is returned unchanged. fn may run more than once for
//     backends with optimistic concurrency.
//   - Keys returns the keys starting with prefix, sorted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// ErrNilValue is returned when a nil value is written; absence is expressed
// with Delete.
var ErrNilValue = errors.New("kv: nil value")
