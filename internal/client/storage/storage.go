// Package storage opens the key/value store selected by configuration and
// prepares it for use (SQL schema migrations, Redis ping, data directory).
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/astroerik-coder/agrostock/internal/client/config"
	"github.com/astroerik-coder/agrostock/internal/client/migrations"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/kv"
	"github.com/astroerik-coder/agrostock/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/viant/afs"
	_ "modernc.org/sqlite"
)

// ErrUnknownBackend is returned by Open for an unsupported config.Backend.
var ErrUnknownBackend = errors.New("unknown storage backend")

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "pgx") to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	dir := migrations.SQLiteDir
	if dialect == "pgx" {
		dir = migrations.PostgresDir
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitSQLite opens (creating if needed) the SQLite database at dsn and
// migrates it. The pool is capped at one connection, which keeps ":memory:"
// databases shared and writers serialised.
func InitSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitPostgres connects to PostgreSQL via pgx and migrates the database.
func InitPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := RunMigrations(ctx, db, "pgx"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// FileURL resolves the file backend location. Values with a scheme
// ("file://", "mem://", ...) are used as is; anything else is a local
// directory, created if missing.
func FileURL(location string) (string, error) {
	if strings.Contains(location, "://") {
		return location, nil
	}
	dir, err := filex.EnsureDir(location)
	if err != nil {
		return "", fmt.Errorf("failed to prepare data directory: %w", err)
	}
	return filex.DirURL(dir), nil
}

// Open returns the kv.Store selected by cfg.Backend. The caller owns the
// store and must Close it.
func Open(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := InitSQLite(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLiteStore(db), nil

	case config.BackendPostgres:
		db, err := InitPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(db), nil

	case config.BackendRedis:
		rdb, err := kv.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisStore(rdb, cfg.RedisNamespace), nil

	case config.BackendFile:
		url, err := FileURL(cfg.FileStoreURL)
		if err != nil {
			return nil, err
		}
		return kv.NewFileStore(afs.New(), url), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
