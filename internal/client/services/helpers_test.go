package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/astroerik-coder/agrostock/internal/client/repositories/kv"
	"github.com/astroerik-coder/agrostock/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) kv.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return kv.NewSQLiteStore(db)
}

// ---- fake logger ----

type logEntry struct {
	Level string
	Msg   string
	Args  []any
}

// recLogger records every call so tests can assert on logged outcomes.
type recLogger struct {
	mu      sync.Mutex
	Entries []logEntry
}

func (l *recLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, logEntry{Level: level, Msg: msg, Args: args})
}

func (l *recLogger) Debug(_ context.Context, msg string, args ...any) { l.add("debug", msg, args) }
func (l *recLogger) Info(_ context.Context, msg string, args ...any)  { l.add("info", msg, args) }
func (l *recLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("warn", msg, args) }
func (l *recLogger) Error(_ context.Context, msg string, args ...any) { l.add("error", msg, args) }
func (l *recLogger) With(args ...any) logging.Logger                  { return l }

func (l *recLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}
	return false
}

// ---- failing store ----

// brokenStore fails every call with Err.
type brokenStore struct {
	Err error
}

func (b brokenStore) Get(context.Context, string) ([]byte, error) { return nil, b.Err }
func (b brokenStore) Set(context.Context, string, []byte) error   { return b.Err }
func (b brokenStore) Delete(context.Context, string) error        { return b.Err }
func (b brokenStore) Update(context.Context, string, func([]byte) ([]byte, error)) error {
	return b.Err
}
func (b brokenStore) Keys(context.Context, string) ([]string, error) { return nil, b.Err }
func (b brokenStore) Close() error                                   { return nil }

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
