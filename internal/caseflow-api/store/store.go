// Copyright 2025 The Caseflow Authors
// SPDX-License-Identifier: Apache-2.0

// Package store implements PostgreSQL persistence for the workflow engine.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/jmoiron/sqlx"
)

// Config holds database connection settings.
type Config struct {
	// URL is the PostgreSQL connection string.
	URL string
	// Schema, when set, is pinned as the connection search_path.
	Schema string
	// MaxOpenConns bounds the connection pool size.
	MaxOpenConns int
	// MaxIdleConns bounds idle pooled connections.
	MaxIdleConns int
	// ConnMaxLifetime recycles connections older than this.
	ConnMaxLifetime time.Duration
}

// Store provides access to the workflow tables. Query methods accept an
// sqlx.ExtContext so the same code serves both pooled reads and statements
// inside a transaction.
type Store struct {
	db     *sqlx.DB
	schema string
	logger *slog.Logger
}

// New wraps an open database handle.
func New(db *sqlx.DB, schema string, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		schema: schema,
		logger: logger.With("module", "store"),
	}
}

// Connect opens a pooled connection to PostgreSQL and verifies it.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	dsn, err := buildDSN(cfg.URL, cfg.Schema)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// buildDSN appends the search_path runtime parameter when a schema is
// configured. pgx passes unknown URL query parameters to the server as
// session settings.
func buildDSN(rawURL, schema string) (string, error) {
	if schema == "" {
		return rawURL, nil
	}

	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("invalid database url: %w", err)
		}
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	// Key/value DSN form
	return rawURL + " search_path=" + schema, nil
}

// DB exposes the pooled handle for non-transactional queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// InTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error and committed otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
